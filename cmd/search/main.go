package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/lintang-b-s/foodmap-search/pkg/datastructure"
	"github.com/lintang-b-s/foodmap-search/pkg/di"
	"github.com/lintang-b-s/foodmap-search/pkg/searcher"

	"github.com/joho/godotenv"
	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

var (
	location   = flag.String("l", "", "location text, e.g. \"Zhongshan, Taipei\"")
	category   = flag.String("c", "", "restaurant category, e.g. hotpot")
	keyword    = flag.String("k", "", "extra keyword, e.g. spicy")
	sortBy     = flag.String("sort", "recommendation", "recommendation, distance or rating")
	hideClosed = flag.Bool("open", false, "only show venues confirmed open now")
	language   = flag.String("lang", "", "zh-TW or en, empty uses PLACES_LANGUAGE")
	enrichTop  = flag.Int("details", 5, "fetch phone and opening hours for the top n results, -1 for all")
	userLat    = flag.Float64("lat", 0, "latitude of your location, used with -lng instead of geocoding")
	userLng    = flag.Float64("lng", 0, "longitude of your location")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()

	sortKey, err := datastructure.ParseSortKey(*sortBy)
	if err != nil {
		log.Fatal(err)
	}

	var userLocation *datastructure.Coordinate
	if isFlagSet("lat") && isFlagSet("lng") {
		coord := datastructure.NewCoordinate(*userLat, *userLng)
		userLocation = &coord
	}

	se, cleanup, err := di.InitializeSearcher()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	outcome, err := se.WithProgress(newDetailsProgress()).Search(ctx, datastructure.SearchCriteria{
		LocationText: *location,
		Category:     *category,
		Keyword:      *keyword,
		HideClosed:   *hideClosed,
		SortKey:      sortKey,
		Language:     *language,
		EnrichTop:    *enrichTop,
	}, userLocation)
	if err != nil {
		log.Fatal(err)
	}

	printOutcome(outcome)
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// newDetailsProgress draws a bar once the number of detail lookups is known.
func newDetailsProgress() searcher.ProgressFunc {
	var (
		once sync.Once
		bar  *progressbar.ProgressBar
	)
	return func(_, total int) {
		once.Do(func() {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionSetWidth(15),
				progressbar.OptionSetDescription("[cyan]Fetching place details..."),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}))
		})
		_ = bar.Add(1)
	}
}

func printOutcome(outcome searcher.Outcome) {
	fmt.Println()
	if outcome.Status == searcher.StatusInvalidQuery || outcome.Status == searcher.StatusNoResults {
		fmt.Println(outcome.Message)
		return
	}

	fmt.Printf("query: %s\ncenter: %s (%s, %s)\n", outcome.Query, outcome.Center.Label,
		outcome.Center.Coordinate, outcome.Center.Source)
	for _, w := range outcome.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSCORE\tNAME\tRATING\tDISTANCE\tOPEN\tPHONE\tADDRESS")
	for i, r := range outcome.Results {
		fmt.Fprintf(tw, "%d\t%.1f\t%s\t%s\t%s\t%s\t%s\t%s\n", i+1, r.RecommendScore, r.Name,
			formatRating(r.Rating), formatDistance(r.DistanceKm), formatOpen(r.OpenNow),
			formatPhone(r.Details), r.Address)
	}
	_ = tw.Flush()

	for i, r := range outcome.Results {
		if r.Details == nil || len(r.Details.WeeklyHours) == 0 {
			continue
		}
		fmt.Printf("\n%d. %s\n   %s\n", i+1, r.Name, strings.Join(r.Details.WeeklyHours, "\n   "))
	}
}

func formatRating(rating *float64) string {
	if rating == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *rating)
}

func formatDistance(km *float64) string {
	if km == nil {
		return "-"
	}
	if *km < 1 {
		return fmt.Sprintf("%.0f m", *km*1000)
	}
	return fmt.Sprintf("%.2f km", *km)
}

func formatOpen(open *bool) string {
	switch {
	case open == nil:
		return "?"
	case *open:
		return "open"
	default:
		return "closed"
	}
}

func formatPhone(details *datastructure.DetailRecord) string {
	if details == nil || details.Phone == nil {
		return "-"
	}
	return *details.Phone
}
