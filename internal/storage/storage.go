// /internal/storage/storage.go
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/keshon/datastore"
)

const commandHistoryLimit int = 50

// Storage wraps the JSON-file datastore with guild-scoped records. Every key
// in the store is a guild ID.
type Storage struct {
	ds *datastore.DataStore
}

// CommandHistoryRecord is one logged invocation.
type CommandHistoryRecord struct {
	ChannelID string    `json:"channel_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Command   string    `json:"command"`
	Param     string    `json:"param"`
	Datetime  time.Time `json:"datetime"`
}

// Record is everything persisted for one guild.
type Record struct {
	Prefix              string                 `json:"prefix,omitempty"`
	DisabledGroups      map[string]bool        `json:"disabled_groups"`
	Roles               map[string]string      `json:"roles"` // e.g. "moderator": roleID
	ConfigValues        map[string]string      `json:"config_values"`
	Notes               map[string][]string    `json:"notes"` // key = userID
	CommandsHistoryList []CommandHistoryRecord `json:"cmd_history"`
}

func New(ctx context.Context, filePath string) (*Storage, error) {
	ds, err := datastore.New(ctx, filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// getOrCreateGuildRecord loads a guild's record, creating an empty one on
// first use.
func (s *Storage) getOrCreateGuildRecord(guildID string) (*Record, error) {
	var record Record
	found, err := s.ds.Get(guildID, &record)
	if err != nil {
		return nil, fmt.Errorf("load record for guild %s: %w", guildID, err)
	}
	if !found {
		record = Record{
			DisabledGroups: map[string]bool{},
			Roles:          map[string]string{},
			ConfigValues:   map[string]string{},
			Notes:          map[string][]string{},
		}
		if err := s.ds.Set(guildID, &record); err != nil {
			return nil, fmt.Errorf("create record for guild %s: %w", guildID, err)
		}
		return &record, nil
	}

	if record.DisabledGroups == nil {
		record.DisabledGroups = map[string]bool{}
	}
	if record.Roles == nil {
		record.Roles = map[string]string{}
	}
	if record.ConfigValues == nil {
		record.ConfigValues = map[string]string{}
	}
	if record.Notes == nil {
		record.Notes = map[string][]string{}
	}
	if len(record.CommandsHistoryList) > commandHistoryLimit {
		record.CommandsHistoryList = record.CommandsHistoryList[len(record.CommandsHistoryList)-commandHistoryLimit:]
	}

	return &record, nil
}

// GuildIDs returns every guild that has a record.
func (s *Storage) GuildIDs() []string {
	return s.ds.Keys()
}

// GetPrefix returns the guild's command prefix, or "" when unset.
func (s *Storage) GetPrefix(guildID string) (string, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return "", err
	}
	return record.Prefix, nil
}

// SetPrefix overrides the guild's command prefix.
func (s *Storage) SetPrefix(guildID, prefix string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.Prefix = prefix
	return s.ds.Set(guildID, record)
}

// IsGroupDisabled reports whether a command group is switched off for the guild.
func (s *Storage) IsGroupDisabled(guildID, group string) (bool, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return false, err
	}
	return record.DisabledGroups[group], nil
}

// SetGroupDisabled toggles a command group for the guild.
func (s *Storage) SetGroupDisabled(guildID, group string, disabled bool) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	if disabled {
		record.DisabledGroups[group] = true
	} else {
		delete(record.DisabledGroups, group)
	}
	return s.ds.Set(guildID, record)
}

// SetRoleForGuild binds a role ID to a role type (e.g. "moderator").
func (s *Storage) SetRoleForGuild(guildID, roleType, roleID string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.Roles[roleType] = roleID
	return s.ds.Set(guildID, record)
}

// GetRoleForGuild returns the role ID bound to a role type, or "".
func (s *Storage) GetRoleForGuild(guildID, roleType string) (string, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return "", err
	}
	return record.Roles[roleType], nil
}

// AppendCommandToHistory appends a command history record for a guild,
// keeping the list capped.
func (s *Storage) AppendCommandToHistory(guildID, channelID, userID, username, commandName, param string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.CommandsHistoryList = append(record.CommandsHistoryList, CommandHistoryRecord{
		ChannelID: channelID,
		UserID:    userID,
		Username:  username,
		Command:   commandName,
		Param:     param,
		Datetime:  time.Now(),
	})
	if len(record.CommandsHistoryList) > commandHistoryLimit {
		record.CommandsHistoryList = record.CommandsHistoryList[len(record.CommandsHistoryList)-commandHistoryLimit:]
	}
	return s.ds.Set(guildID, record)
}

// FetchCommandHistory returns the guild's logged invocations, oldest first.
func (s *Storage) FetchCommandHistory(guildID string) ([]CommandHistoryRecord, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.CommandsHistoryList, nil
}
