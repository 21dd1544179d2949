package catalog

import (
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS countries (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		code TEXT NOT NULL UNIQUE,
		region TEXT,
		language TEXT,
		average_living_cost REAL,
		average_tuition_cost REAL,
		safety_index INTEGER,
		quality_of_life_index INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS universities (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		country_id INTEGER,
		city TEXT,
		country TEXT,
		ranking_global INTEGER,
		ranking_national INTEGER,
		student_count INTEGER,
		established_year INTEGER,
		FOREIGN KEY (country_id) REFERENCES countries(id)
	)`,
	`CREATE TABLE IF NOT EXISTS programs (
		id INTEGER PRIMARY KEY,
		name_program TEXT NOT NULL,
		university_id INTEGER,
		field TEXT,
		level TEXT,
		language TEXT,
		duration INTEGER,
		tuition_per_year REAL,
		application_fee REAL,
		admission_requirements TEXT,
		FOREIGN KEY (university_id) REFERENCES universities(id)
	)`,
}

type seedCountry struct {
	id                              int
	name, code, region, language    string
	livingCost, tuitionCost         float64
	safetyIndex, qualityOfLifeIndex int
}

type seedUniversity struct {
	id, countryID         int
	name, city, country   string
	rankGlobal, rankNat   int
	students, established int
}

type seedProgram struct {
	id, universityID   int
	name, field, level string
	language           string
	duration           int
	tuition, appFee    float64
	admission          string
}

var sampleCountries = []seedCountry{
	{1, "United States", "US", "North America", "English", 1800, 35000, 70, 80},
	{2, "Germany", "DE", "Europe", "German", 1000, 1500, 80, 85},
	{3, "Canada", "CA", "North America", "English/French", 1500, 25000, 85, 90},
	{4, "United Kingdom", "UK", "Europe", "English", 1700, 30000, 75, 82},
	{5, "Australia", "AU", "Oceania", "English", 1600, 32000, 82, 88},
	{6, "France", "FR", "Europe", "French", 1200, 2000, 78, 83},
	{7, "Netherlands", "NL", "Europe", "Dutch", 1300, 12000, 83, 88},
	{8, "Singapore", "SG", "Asia", "English/Mandarin", 2000, 35000, 90, 85},
	{9, "Japan", "JP", "Asia", "Japanese", 1400, 15000, 88, 80},
	{10, "Sweden", "SE", "Europe", "Swedish", 1500, 0, 85, 90},
}

var sampleUniversities = []seedUniversity{
	{1, 1, "Massachusetts Institute of Technology", "Boston", "United States", 1, 1, 11000, 1861},
	{2, 1, "Harvard University", "Boston", "United States", 2, 2, 23000, 1636},
	{3, 2, "Technical University of Munich", "Munich", "Germany", 50, 1, 40000, 1868},
	{4, 2, "Humboldt University of Berlin", "Berlin", "Germany", 80, 3, 35000, 1810},
	{5, 3, "University of Toronto", "Toronto", "Canada", 25, 1, 95000, 1827},
	{6, 3, "University of British Columbia", "Vancouver", "Canada", 35, 2, 65000, 1908},
	{7, 4, "Imperial College London", "London", "United Kingdom", 10, 3, 19000, 1907},
	{8, 5, "University of Sydney", "Sydney", "Australia", 40, 1, 70000, 1850},
	{9, 6, "Sorbonne University", "Paris", "France", 90, 1, 55000, 1253},
	{10, 7, "University of Amsterdam", "Amsterdam", "Netherlands", 65, 1, 30000, 1632},
	{11, 8, "National University of Singapore", "Singapore", "Singapore", 15, 1, 40000, 1905},
	{12, 9, "University of Tokyo", "Tokyo", "Japan", 30, 1, 28000, 1877},
	{13, 10, "KTH Royal Institute of Technology", "Stockholm", "Sweden", 70, 1, 15000, 1827},
}

var samplePrograms = []seedProgram{
	{1, 1, "Master of Computer Science", "Computer Science", "Master", "English", 2, 50000, 75, "GRE, 3.5+ GPA, TOEFL"},
	{2, 2, "MBA", "Business", "Master", "English", 2, 70000, 100, "GMAT, 2+ years work experience"},
	{3, 3, "Master of Data Science", "Computer Science", "Master", "English", 2, 1500, 50, "Bachelor in CS or related field, GRE"},
	{4, 4, "PhD in Physics", "Physics", "PhD", "German/English", 4, 0, 0, "Master's degree, research proposal"},
	{5, 5, "Master of Computer Science", "Computer Science", "Master", "English", 2, 25000, 120, "GRE, B+ average"},
	{6, 6, "Bachelor of Engineering", "Engineering", "Bachelor", "English", 4, 30000, 90, "High school diploma, SAT/ACT"},
	{7, 7, "MSc in Artificial Intelligence", "Computer Science", "Master", "English", 1, 35000, 80, "Bachelor in CS or related field"},
	{8, 8, "Bachelor of Science in Medicine", "Medicine", "Bachelor", "English", 6, 40000, 150, "High school diploma with strong science"},
	{9, 9, "Master of Arts in Literature", "Literature", "Master", "French", 2, 2000, 60, "Bachelor's degree, French proficiency"},
	{10, 10, "MSc in Sustainable Development", "Environmental Sciences", "Master", "English", 2, 16000, 100, "Bachelor's degree in related field"},
	{11, 11, "Master of Engineering", "Engineering", "Master", "English", 2, 35000, 90, "Bachelor in Engineering, GRE"},
	{12, 12, "PhD in Robotics", "Engineering", "PhD", "English/Japanese", 5, 8000, 0, "Master's degree, research proposal"},
	{13, 13, "MSc in Sustainable Technology", "Environmental Engineering", "Master", "English", 2, 0, 75, "Bachelor's degree, English proficiency"},
	{14, 1, "Bachelor of Computer Science", "Computer Science", "Bachelor", "English", 4, 45000, 75, "High school diploma, SAT/ACT"},
	{15, 5, "Master of Public Health", "Health Sciences", "Master", "English", 2, 28000, 110, "Bachelor's degree, GRE"},
	{16, 7, "MSc in Finance", "Finance", "Master", "English", 1, 38000, 95, "Bachelor's degree, GMAT"},
	{17, 3, "Master in Machine Learning", "Computer Science", "Master", "English", 2, 1500, 50, "Bachelor in CS or Mathematics"},
	{18, 11, "MSc in Biomedical Engineering", "Engineering", "Master", "English", 2, 32000, 80, "Bachelor in Engineering or Life Sciences"},
	{19, 2, "PhD in Economics", "Economics", "PhD", "English", 4, 0, 0, "Master's degree, research proposal"},
	{20, 6, "Bachelor of Business Administration", "Business", "Bachelor", "English", 3, 28000, 90, "High school diploma, personal statement"},
}

// Seed creates the catalog schema and populates it with the sample
// dataset. Existing rows with the same ids are replaced.
func Seed(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, c := range sampleCountries {
		_, err := tx.Exec(`INSERT OR REPLACE INTO countries
			(id, name, code, region, language, average_living_cost, average_tuition_cost, safety_index, quality_of_life_index)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.id, c.name, c.code, c.region, c.language, c.livingCost, c.tuitionCost, c.safetyIndex, c.qualityOfLifeIndex)
		if err != nil {
			return fmt.Errorf("seed country %q: %w", c.name, err)
		}
	}
	for _, u := range sampleUniversities {
		_, err := tx.Exec(`INSERT OR REPLACE INTO universities
			(id, name, country_id, city, country, ranking_global, ranking_national, student_count, established_year)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			u.id, u.name, u.countryID, u.city, u.country, u.rankGlobal, u.rankNat, u.students, u.established)
		if err != nil {
			return fmt.Errorf("seed university %q: %w", u.name, err)
		}
	}
	for _, p := range samplePrograms {
		_, err := tx.Exec(`INSERT OR REPLACE INTO programs
			(id, name_program, university_id, field, level, language, duration, tuition_per_year, application_fee, admission_requirements)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.id, p.name, p.universityID, p.field, p.level, p.language, p.duration, p.tuition, p.appFee, p.admission)
		if err != nil {
			return fmt.Errorf("seed program %q: %w", p.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	return nil
}
