package main

import (
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"visualdeck/library"
	"visualdeck/media"
	"visualdeck/upload"
	"visualdeck/utils"
)

const uploadRetention = time.Hour

func SetupInBackground(pipeline *upload.Pipeline, lib *library.Store) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, err
	}

	s.NewJob(
		gocron.DurationJob(time.Minute),
		gocron.NewTask(pruneUploads, pipeline),
	)

	s.NewJob(
		gocron.DurationJob(time.Minute*15),
		gocron.NewTask(backfillColours, lib),
	)

	return s, nil
}

func pruneUploads(pipeline *upload.Pipeline) {
	if removed := pipeline.Prune(uploadRetention); removed > 0 {
		slog.Debug("Pruned finished upload tasks", slog.Int("removed", removed))
	}
}

// backfillColours fills in dominant colours for items that arrived
// without them, one thumbnail fetch at a time. Failures are skipped;
// the next run picks them up again.
func backfillColours(lib *library.Store) {
	for _, item := range lib.Snapshot() {
		if len(item.DominantColours) > 0 || item.Thumbnail == "" {
			continue
		}
		colours, err := utils.ExtractDominantColours(item.Thumbnail)
		if err != nil {
			slog.Debug("Could not extract thumbnail colours",
				slog.String("id", item.ID), slog.String("stack", err.Error()))
			continue
		}
		c := media.Colours(colours)
		if err := lib.Update(item.ID, library.Patch{DominantColours: &c}); err != nil {
			slog.Error("Failed to store thumbnail colours",
				slog.String("id", item.ID), slog.String("stack", err.Error()))
		}
	}
}
