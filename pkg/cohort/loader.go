package cohort

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

// LoadCSV reads the student migration dataset. Blank or unparseable
// numeric cells become NaN; rows with the wrong column count are skipped
// and logged rather than failing the load.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open migration data: %w", err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV parses migration records from r. The first row must be the
// header.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	columns := make(map[string]bool, len(header))
	for i, name := range header {
		index[name] = i
		columns[name] = true
	}

	ds := &Dataset{Columns: columns}
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			log.Warn().Err(err).Int("line", line).Msg("skipping malformed migration row")
			continue
		}
		if len(row) != len(header) {
			log.Warn().Int("line", line).Msg("skipping migration row with wrong column count")
			continue
		}

		cell := func(column string) string {
			i, ok := index[column]
			if !ok {
				return ""
			}
			return row[i]
		}

		id, _ := strconv.Atoi(cell(ColStudentID))
		ds.Records = append(ds.Records, Record{
			StudentID:          id,
			FieldOfStudy:       cell(ColFieldOfStudy),
			GPA:                parseFloat(cell(ColGPA)),
			TuitionBudget:      parseFloat(cell(ColTuitionBudget)),
			LivingBudget:       parseFloat(cell(ColLivingBudget)),
			RankingImportance:  parseFloat(cell(ColRankingImportance)),
			CostSensitivity:    parseFloat(cell(ColCostSensitivity)),
			CareerImportance:   parseFloat(cell(ColCareerImportance)),
			SafetyImportance:   parseFloat(cell(ColSafetyImportance)),
			ConfidenceLevel:    parseFloat(cell(ColConfidenceLevel)),
			RiskTolerance:      parseFloat(cell(ColRiskTolerance)),
			DestinationCountry: cell(ColDestinationCountry),
			Satisfaction:       parseFloat(cell(ColSatisfaction)),
		})
	}

	log.Info().Int("records", len(ds.Records)).Msg("loaded student migration data")
	return ds, nil
}

func parseFloat(s string) float64 {
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
