package storage

import (
	"context"
	"log"
	"time"
)

const historyMaxAge = 30 * 24 * time.Hour

// RunHistoryPruner runs a background goroutine that drops command history
// entries older than a month, hourly, until ctx is done. Call from main.
func RunHistoryPruner(ctx context.Context, store *Storage) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := store.PruneHistory(time.Now().Add(-historyMaxAge)); err != nil {
				log.Println("[ERR] Error pruning command history:", err)
			}
		}
	}
}

// PruneHistory removes history records older than cutoff from every guild.
func (s *Storage) PruneHistory(cutoff time.Time) error {
	for _, guildID := range s.GuildIDs() {
		record, err := s.getOrCreateGuildRecord(guildID)
		if err != nil {
			return err
		}
		kept := record.CommandsHistoryList[:0]
		for _, h := range record.CommandsHistoryList {
			if h.Datetime.After(cutoff) {
				kept = append(kept, h)
			}
		}
		if len(kept) != len(record.CommandsHistoryList) {
			record.CommandsHistoryList = kept
			if err := s.ds.Set(guildID, record); err != nil {
				return err
			}
		}
	}
	return nil
}
