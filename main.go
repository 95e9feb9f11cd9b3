package main

import "github.com/FarisHijazi/csv-profiler/cmd"

func main() {
	cmd.Execute()
}
