package guildconfig

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"guild-warden/internal/command"
	"guild-warden/internal/storage"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

func guildCtx(t *testing.T) *command.Context {
	t.Helper()
	storeCtx, cancel := context.WithCancel(context.Background())
	store, err := storage.New(storeCtx, filepath.Join(t.TempDir(), "datastore.json"))
	require.NoError(t, err)
	t.Cleanup(func() {
		cancel()
		_ = store.Close()
	})

	ctx := command.NewContext(context.Background(), command.NewTokens("config"), nil)
	ctx.Storage = store
	ctx.Event = &discordgo.MessageCreate{Message: &discordgo.Message{GuildID: "g1"}}
	return ctx
}

func TestStringEntryDefaultAndSet(t *testing.T) {
	ctx := guildCtx(t)
	e := NewStringEntry("greeting", "test entry", "Welcome!", nil)

	v, err := e.Display(ctx)
	require.NoError(t, err)
	require.Equal(t, "Welcome!", v)

	require.NoError(t, e.Set(ctx, "Hello there"))
	v, err = e.Display(ctx)
	require.NoError(t, err)
	require.Equal(t, "Hello there", v)

	require.NoError(t, e.Reset(ctx))
	v, err = e.Display(ctx)
	require.NoError(t, err)
	require.Equal(t, "Welcome!", v)
}

func TestStringEntryValidator(t *testing.T) {
	ctx := guildCtx(t)
	e := NewStringEntry("motto", "test entry", "", func(s string) error {
		if len(s) > 10 {
			return fmt.Errorf("too long")
		}
		return nil
	})

	require.Error(t, e.Set(ctx, "definitely longer than ten"))
	require.NoError(t, e.Set(ctx, "short"))
}

func TestIntEntryBoundsAndValue(t *testing.T) {
	ctx := guildCtx(t)
	e := NewIntEntry("purge_limit", "test entry", 50, 1, 200)

	n, err := e.Value(ctx)
	require.NoError(t, err)
	require.Equal(t, 50, n)

	require.Error(t, e.Set(ctx, "0"))
	require.Error(t, e.Set(ctx, "9000"))
	require.Error(t, e.Set(ctx, "many"))
	require.NoError(t, e.Set(ctx, "120"))

	n, err = e.Value(ctx)
	require.NoError(t, err)
	require.Equal(t, 120, n)

	v, err := e.Display(ctx)
	require.NoError(t, err)
	require.Equal(t, "120", v)
}

func TestEntryRequiresGuild(t *testing.T) {
	ctx := command.NewContext(context.Background(), command.NewTokens("config"), nil)
	e := NewStringEntry("greeting", "test entry", "", nil)
	require.Error(t, e.Set(ctx, "hi"))
	_, err := e.Display(ctx)
	require.Error(t, err)
}

func TestConfiguratorRejectsDuplicateKey(t *testing.T) {
	c := NewConfigurator()
	require.NoError(t, c.Register(NewStringEntry("k", "first", "", nil)))
	require.Error(t, c.Register(NewIntEntry("k", "second", 0, 0, 0)))
}

func TestConfiguratorEntriesSorted(t *testing.T) {
	c := NewConfigurator()
	require.NoError(t, c.Register(NewStringEntry("zeta", "", "", nil)))
	require.NoError(t, c.Register(NewStringEntry("alpha", "", "", nil)))

	entries := c.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, "alpha", entries[0].Key())
	require.Equal(t, "zeta", entries[1].Key())
}

type countingVisitor struct {
	strings, ints, members int
}

func (v *countingVisitor) VisitString(*StringEntry) error { v.strings++; return nil }
func (v *countingVisitor) VisitInt(*IntEntry) error       { v.ints++; return nil }
func (v *countingVisitor) VisitMember(*MemberEntry) error { v.members++; return nil }

func TestVisitorDispatchesByType(t *testing.T) {
	var v countingVisitor
	entries := []Entry{
		NewStringEntry("s", "", "", nil),
		NewIntEntry("i", "", 0, 0, 0),
		NewMemberEntry("m", ""),
	}
	for _, e := range entries {
		require.NoError(t, e.Accept(&v))
	}
	require.Equal(t, 1, v.strings)
	require.Equal(t, 1, v.ints)
	require.Equal(t, 1, v.members)
}
