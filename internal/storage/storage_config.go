package storage

// Guild config entry values live in the same per-guild record as everything
// else, keyed by the entry key (see internal/guildconfig).

// GetConfigValue returns the stored raw value for a config entry key.
func (s *Storage) GetConfigValue(guildID, key string) (string, bool, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return "", false, err
	}
	v, ok := record.ConfigValues[key]
	return v, ok, nil
}

// SetConfigValue stores the raw value for a config entry key.
func (s *Storage) SetConfigValue(guildID, key, value string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.ConfigValues[key] = value
	return s.ds.Set(guildID, record)
}

// ResetConfigValue removes the stored value so the entry's default applies.
func (s *Storage) ResetConfigValue(guildID, key string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	delete(record.ConfigValues, key)
	return s.ds.Set(guildID, record)
}
