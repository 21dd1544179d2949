package main

import "uni_recommender/cmd"

func main() {
	cmd.Execute()
}
