// Command csvtool inspects exported dashboard CSV files from the
// terminal. It runs the same parser the import endpoint uses, so a file
// that renders here will import cleanly.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"weatherdash.app/forecast"
	"weatherdash.app/models"
)

var (
	labelColor = color.New(color.FgCyan)
	dateColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errColor   = color.New(color.FgRed)
)

var titleCase = cases.Title(language.English)

func main() {
	flagNoColor := flag.Bool("no-color", false, "Disable color output")
	dateFlag := flag.String("date", "", "Treat this date (YYYY-MM-DD) as today instead of the wall clock")
	flag.Parse()

	if *flagNoColor {
		color.NoColor = true
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: csvtool [flags] <file.csv>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	today := time.Now()
	if *dateFlag != "" {
		parsed, err := time.Parse("2006-01-02", *dateFlag)
		if err != nil {
			errColor.Fprintf(os.Stderr, "invalid -date value %q: %v\n", *dateFlag, err)
			os.Exit(2)
		}
		today = parsed
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		errColor.Fprintf(os.Stderr, "read file: %v\n", err)
		os.Exit(1)
	}

	snapshot, city, err := forecast.ParseSnapshotCSV(string(data), today)
	if err != nil {
		errColor.Fprintf(os.Stderr, "parse CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Weather snapshot for %s\n\n", titleCase.String(city))

	printDay("Previous day", snapshot.PreviousDay)
	printDay("Current day", snapshot.CurrentDay)
	printDay("Next day", snapshot.NextDay)

	if len(snapshot.FutureDays) > 0 {
		labelColor.Println("Upcoming days")
		for i := range snapshot.FutureDays {
			day := snapshot.FutureDays[i]
			dateColor.Printf("  %-12s", day.Date)
			fmt.Printf(" %3d°C / %3d°F  %-20s humidity %d%%  wind %s km/h\n",
				day.Temp, day.TempF,
				titleCase.String(day.Description),
				day.Humidity,
				strconv.FormatFloat(day.WindSpeed, 'f', -1, 64))
		}
	}
}

func printDay(label string, day *models.DaySummary) {
	labelColor.Printf("%-13s", label)
	if day == nil {
		warnColor.Println(" (no data)")
		return
	}

	dateColor.Printf(" %s", day.Date)
	fmt.Printf("  %d°C / %d°F  %s  humidity %d%%  wind %s km/h\n",
		day.Temp, day.TempF,
		titleCase.String(day.Description),
		day.Humidity,
		strconv.FormatFloat(day.WindSpeed, 'f', -1, 64))

	if day.Advice != "" {
		fmt.Printf("%14s%s\n", "", day.Advice)
	}
}
