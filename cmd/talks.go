package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"conference-hub/core/config"
	"conference-hub/core/feed"
	"conference-hub/core/logger"
	"conference-hub/core/stats"
	"conference-hub/feature/conference"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// talkDetailCmd represents the top-level talks command
var talkDetailCmd = &cobra.Command{
	Use:   "talks [id]",
	Short: "View details of a talk",
	Long:  `Fetches one talk from the event feed and prints its resolved details, including schedule slots, speakers and statistics-enriched counters.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		runTalkDetail(cmd.Context(), args[0], jsonOutput)
	},
}

func init() {
	talkDetailCmd.Flags().Bool("json", false, "Output the talk as JSON")
	RootCmd.AddCommand(talkDetailCmd)
}

func runTalkDetail(ctx context.Context, talkID string, jsonOutput bool) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	feedClient := feed.NewClient(cfg.Feed, logg)
	statsClient := stats.NewClient(feedClient, cfg.Stats)

	svc, err := conference.NewService(feedClient, statsClient, logg, cfg.RandomRated)
	if err != nil {
		logg.Fatal("Failed to initialize conference service", zap.Error(err))
	}

	logg.Info("Fetching talk...", zap.String("id", talkID))
	talk, err := svc.Talk(ctx, talkID)
	if err != nil {
		logg.Fatal("Talk fetch failed", zap.Error(err))
	}
	if talk == nil {
		logg.Fatal("Talk not found", zap.String("id", talkID))
	}

	if jsonOutput {
		data, err := json.MarshalIndent(talk, "", "  ")
		if err != nil {
			logg.Fatal("Failed to marshal talk", zap.Error(err))
		}
		fmt.Println(string(data))
		return
	}

	// Pretty Console Output
	fmt.Println("\n--- Talk Detail View ---")
	fmt.Printf("ID:             %s\n", talk.ID)
	fmt.Printf("Title:          %s\n", talk.Title)
	fmt.Printf("Audience Level: %s\n", talk.AudienceLevel)
	if talk.SessionType != nil {
		fmt.Printf("Session Type:   %s (%s)\n", talk.SessionType.Name, talk.SessionType.Duration)
	}
	if talk.Track != nil {
		fmt.Printf("Track:          %s\n", talk.Track.Name)
	}
	fmt.Printf("Favorites:      %d\n", talk.FavoriteCount)
	if len(talk.Tags) > 0 {
		fmt.Printf("Tags:           %s\n", strings.Join(talk.Tags, ", "))
	}
	fmt.Println("------------------------")

	if len(talk.Speakers) > 0 {
		fmt.Println("\nSpeakers:")
		for _, speaker := range talk.Speakers {
			if speaker.Company != "" {
				fmt.Printf("- %s (%s)\n", speaker.FullName, speaker.Company)
			} else {
				fmt.Printf("- %s\n", speaker.FullName)
			}
		}
	}

	if len(talk.ScheduleSlots) > 0 {
		fmt.Println("\nSchedule:")
		for _, slot := range talk.ScheduleSlots {
			room := "?"
			if slot.Room != nil {
				room = slot.Room.Name
			}
			fmt.Printf("- %s - %s in %s\n",
				slot.Start.Format("Mon 15:04"),
				slot.End.Format("15:04"),
				room)
		}
	}
	fmt.Println("------------------------")
}
