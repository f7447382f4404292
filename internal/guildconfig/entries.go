package guildconfig

import (
	"fmt"
	"strconv"

	"guild-warden/internal/command"
)

// StringEntry stores free-form text, optionally validated.
type StringEntry struct {
	key         string
	description string
	defaultVal  string
	validate    func(string) error
}

// NewStringEntry declares a string setting. validate may be nil.
func NewStringEntry(key, description, defaultVal string, validate func(string) error) *StringEntry {
	return &StringEntry{key: key, description: description, defaultVal: defaultVal, validate: validate}
}

func (e *StringEntry) Key() string         { return e.key }
func (e *StringEntry) Description() string { return e.description }

func (e *StringEntry) Display(ctx *command.Context) (string, error) {
	guildID, err := requireGuild(ctx)
	if err != nil {
		return "", err
	}
	v, ok, err := ctx.Storage.GetConfigValue(guildID, e.key)
	if err != nil {
		return "", err
	}
	if !ok {
		return e.defaultVal, nil
	}
	return v, nil
}

func (e *StringEntry) Set(ctx *command.Context, input string) error {
	guildID, err := requireGuild(ctx)
	if err != nil {
		return err
	}
	if e.validate != nil {
		if err := e.validate(input); err != nil {
			return err
		}
	}
	return ctx.Storage.SetConfigValue(guildID, e.key, input)
}

func (e *StringEntry) Reset(ctx *command.Context) error { return resetValue(ctx, e.key) }
func (e *StringEntry) Accept(v Visitor) error           { return v.VisitString(e) }

// IntEntry stores an integer within optional bounds.
type IntEntry struct {
	key         string
	description string
	defaultVal  int
	min, max    int // inclusive; ignored when both are zero
}

// NewIntEntry declares an integer setting. Pass min == max == 0 for unbounded.
func NewIntEntry(key, description string, defaultVal, min, max int) *IntEntry {
	return &IntEntry{key: key, description: description, defaultVal: defaultVal, min: min, max: max}
}

func (e *IntEntry) Key() string         { return e.key }
func (e *IntEntry) Description() string { return e.description }

// Value returns the stored integer, or the default.
func (e *IntEntry) Value(ctx *command.Context) (int, error) {
	guildID, err := requireGuild(ctx)
	if err != nil {
		return 0, err
	}
	raw, ok, err := ctx.Storage.GetConfigValue(guildID, e.key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return e.defaultVal, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return e.defaultVal, nil
	}
	return n, nil
}

func (e *IntEntry) Display(ctx *command.Context) (string, error) {
	n, err := e.Value(ctx)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

func (e *IntEntry) Set(ctx *command.Context, input string) error {
	guildID, err := requireGuild(ctx)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return fmt.Errorf("`%s` is not a valid number", input)
	}
	if e.min != 0 || e.max != 0 {
		if n < e.min || n > e.max {
			return fmt.Errorf("value must be between %d and %d", e.min, e.max)
		}
	}
	return ctx.Storage.SetConfigValue(guildID, e.key, strconv.Itoa(n))
}

func (e *IntEntry) Reset(ctx *command.Context) error { return resetValue(ctx, e.key) }
func (e *IntEntry) Accept(v Visitor) error           { return v.VisitInt(e) }

// MemberEntry stores a guild member reference by user ID. Input is accepted
// as a mention or raw ID and resolved through the member parser, so setting
// it verifies the member exists.
type MemberEntry struct {
	key         string
	description string
}

func NewMemberEntry(key, description string) *MemberEntry {
	return &MemberEntry{key: key, description: description}
}

func (e *MemberEntry) Key() string         { return e.key }
func (e *MemberEntry) Description() string { return e.description }

func (e *MemberEntry) Display(ctx *command.Context) (string, error) {
	guildID, err := requireGuild(ctx)
	if err != nil {
		return "", err
	}
	id, ok, err := ctx.Storage.GetConfigValue(guildID, e.key)
	if err != nil {
		return "", err
	}
	if !ok || id == "" {
		return "not set", nil
	}
	return "<@" + id + ">", nil
}

func (e *MemberEntry) Set(ctx *command.Context, input string) error {
	guildID, err := requireGuild(ctx)
	if err != nil {
		return err
	}
	member, err := (command.MemberParser{}).Parse(ctx, input)
	if err != nil {
		return err
	}
	return ctx.Storage.SetConfigValue(guildID, e.key, member.User.ID)
}

func (e *MemberEntry) Reset(ctx *command.Context) error { return resetValue(ctx, e.key) }
func (e *MemberEntry) Accept(v Visitor) error           { return v.VisitMember(e) }
