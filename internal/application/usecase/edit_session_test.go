package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/avdedit/internal/application/port/mocks"
	"github.com/bnema/avdedit/internal/application/usecase"
	"github.com/bnema/avdedit/internal/domain/entity"
)

var pixel = entity.AvdDescriptor{
	Name:       "Pixel_6",
	Dir:        "/avd/Pixel_6.avd",
	ConfigPath: "/avd/Pixel_6.avd/config.ini",
	HasConfig:  true,
}

func mustParse(t *testing.T, content string) *entity.ConfigDocument {
	t.Helper()
	doc, err := entity.ParseConfigDocument(pixel.ConfigPath, []byte(content))
	require.NoError(t, err)
	return doc
}

func openSession(t *testing.T, ctx context.Context, content string) (*usecase.EditSession, *mocks.MockConfigStore) {
	t.Helper()
	store := mocks.NewMockConfigStore(t)
	store.EXPECT().Load(ctx, pixel.ConfigPath).Return(mustParse(t, content), nil).Once()

	s := usecase.NewEditSession(store)
	require.NoError(t, s.Open(ctx, pixel))
	return s, store
}

func TestEditSession_Open_Rows(t *testing.T) {
	ctx := testContext()
	s, _ := openSession(t, ctx, "hw.gps=yes\nPlayStore.enabled=true\nunknown.key=foo")

	assert.Equal(t, []usecase.EntryRow{
		{Key: "hw.gps", Value: "yes", Kind: entity.YesNoBoolean, Checked: true},
		{Key: "PlayStore.enabled", Value: "true", Kind: entity.RealBoolean, Checked: true},
		{Key: "unknown.key", Value: "foo", Kind: entity.FreeText, Checked: false},
	}, s.Rows())
	assert.True(t, s.Editable())
	assert.False(t, s.Missing())
	assert.False(t, s.Dirty())

	avd, ok := s.Avd()
	require.True(t, ok)
	assert.Equal(t, pixel, avd)
}

func TestEditSession_Open_MissingConfigIsEmptyState(t *testing.T) {
	ctx := testContext()
	store := mocks.NewMockConfigStore(t)
	store.EXPECT().Load(ctx, pixel.ConfigPath).Return(nil, entity.ErrConfigNotFound)

	s := usecase.NewEditSession(store)
	require.NoError(t, s.Open(ctx, pixel))

	assert.True(t, s.Missing())
	assert.False(t, s.Editable())
	assert.Empty(t, s.Rows())
	assert.False(t, s.AddEntry("a=b"))
	assert.ErrorIs(t, s.SetValue("a", "b"), usecase.ErrNoDocument)
	assert.ErrorIs(t, s.Save(ctx), usecase.ErrNoDocument)
}

func TestEditSession_Open_ParseErrorRetainsPreviousDocument(t *testing.T) {
	ctx := testContext()
	s, store := openSession(t, ctx, "a=1")
	require.NoError(t, s.SetValue("a", "edited"))

	other := entity.AvdDescriptor{Name: "Broken", ConfigPath: "/avd/Broken.avd/config.ini"}
	store.EXPECT().Load(ctx, other.ConfigPath).
		Return(nil, &entity.ParseError{Path: other.ConfigPath, Line: 1, Text: "junk", Reason: "missing '='"})

	err := s.Open(ctx, other)
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrParse)

	avd, _ := s.Avd()
	assert.Equal(t, pixel, avd)
	v, _ := s.Get("a")
	assert.Equal(t, "edited", v)
	assert.True(t, s.Dirty())
}

func TestEditSession_Open_SwitchReplacesDocument(t *testing.T) {
	ctx := testContext()
	s, store := openSession(t, ctx, "a=1")
	require.NoError(t, s.SetValue("a", "edited"))

	other := entity.AvdDescriptor{Name: "Nexus", ConfigPath: "/avd/Nexus.avd/config.ini"}
	store.EXPECT().Load(ctx, other.ConfigPath).Return(mustParse(t, "b=2"), nil)

	require.NoError(t, s.Open(ctx, other))

	_, ok := s.Get("a")
	assert.False(t, ok)
	v, _ := s.Get("b")
	assert.Equal(t, "2", v)
	assert.False(t, s.Dirty())
}

func TestEditSession_SetBoolAndToggle(t *testing.T) {
	ctx := testContext()
	s, _ := openSession(t, ctx, "hw.gps=yes\nPlayStore.enabled=false\nname=x")

	require.NoError(t, s.SetBool("hw.gps", false))
	v, _ := s.Get("hw.gps")
	assert.Equal(t, "no", v)

	on, err := s.Toggle("PlayStore.enabled")
	require.NoError(t, err)
	assert.True(t, on)
	v, _ = s.Get("PlayStore.enabled")
	assert.Equal(t, "true", v)

	// Unclassified keys have no boolean view.
	_, err = s.Toggle("name")
	assert.ErrorIs(t, err, entity.ErrNotBoolean)
	assert.ErrorIs(t, s.SetBool("name", true), entity.ErrNotBoolean)

	assert.True(t, s.Dirty())
}

func TestEditSession_ToggleMalformedValue(t *testing.T) {
	ctx := testContext()
	s, _ := openSession(t, ctx, "hw.keyboard=maybe")

	on, err := s.Toggle("hw.keyboard")
	require.NoError(t, err)
	assert.True(t, on)
	v, _ := s.Get("hw.keyboard")
	assert.Equal(t, "yes", v)
}

func TestEditSession_AddEntry(t *testing.T) {
	ctx := testContext()
	s, _ := openSession(t, ctx, "a=1")

	assert.True(t, s.AddEntry("hw.ramSize=2048"))
	assert.True(t, s.AddEntry("a=2"))

	for _, bad := range []string{"", "noequals", "=v", "k=", "a=b=c"} {
		assert.False(t, s.AddEntry(bad), "input %q", bad)
	}

	rows := s.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0].Key)
	assert.Equal(t, "2", rows[0].Value)
	assert.Equal(t, "hw.ramSize", rows[1].Key)
}

func TestEditSession_AddEntryRejectedLeavesClean(t *testing.T) {
	ctx := testContext()
	s, _ := openSession(t, ctx, "a=1")

	assert.False(t, s.AddEntry("bad"))
	assert.False(t, s.Dirty())
}

func TestEditSession_SetValueValidation(t *testing.T) {
	ctx := testContext()
	s, _ := openSession(t, ctx, "a=1")

	assert.ErrorIs(t, s.SetValue("", "x"), entity.ErrInvalidKey)
	assert.ErrorIs(t, s.SetValue("a", "x\ny"), entity.ErrInvalidValue)
	assert.False(t, s.Dirty())
}

func TestEditSession_Save(t *testing.T) {
	ctx := testContext()
	s, store := openSession(t, ctx, "hw.gps=yes\nPlayStore.enabled=true\nunknown.key=foo")
	require.NoError(t, s.SetBool("hw.gps", false))

	store.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.ConfigDocument"), pixel.ConfigPath).
		Run(func(_ context.Context, doc *entity.ConfigDocument, _ string) {
			assert.Equal(t, "PlayStore.enabled=true\nhw.gps=no\nunknown.key=foo", string(doc.Marshal()))
		}).
		Return(nil)

	require.NoError(t, s.Save(ctx))
	assert.False(t, s.Dirty())
}

func TestEditSession_SaveFailureKeepsDirty(t *testing.T) {
	ctx := testContext()
	s, store := openSession(t, ctx, "a=1")
	require.NoError(t, s.SetValue("a", "2"))

	store.EXPECT().Save(ctx, mock.Anything, pixel.ConfigPath).Return(entity.ErrIO)

	err := s.Save(ctx)
	assert.ErrorIs(t, err, entity.ErrIO)
	assert.True(t, s.Dirty())
}

func TestEditSession_Reload(t *testing.T) {
	ctx := testContext()

	t.Run("unchanged file", func(t *testing.T) {
		s, store := openSession(t, ctx, "a=1")
		store.EXPECT().Load(ctx, pixel.ConfigPath).Return(mustParse(t, "a=1"), nil)

		res, err := s.Reload(ctx)
		require.NoError(t, err)
		assert.Equal(t, usecase.ReloadUnchanged, res)
	})

	t.Run("clean session takes the new file", func(t *testing.T) {
		s, store := openSession(t, ctx, "a=1")
		store.EXPECT().Load(ctx, pixel.ConfigPath).Return(mustParse(t, "a=2\nb=3"), nil)

		res, err := s.Reload(ctx)
		require.NoError(t, err)
		assert.Equal(t, usecase.ReloadReplaced, res)
		v, _ := s.Get("b")
		assert.Equal(t, "3", v)
	})

	t.Run("dirty session keeps edits", func(t *testing.T) {
		s, store := openSession(t, ctx, "a=1")
		require.NoError(t, s.SetValue("a", "mine"))
		store.EXPECT().Load(ctx, pixel.ConfigPath).Return(mustParse(t, "a=theirs"), nil)

		res, err := s.Reload(ctx)
		require.NoError(t, err)
		assert.Equal(t, usecase.ReloadConflict, res)
		v, _ := s.Get("a")
		assert.Equal(t, "mine", v)
		assert.True(t, s.Dirty())
	})

	t.Run("own save is not a conflict for later edits", func(t *testing.T) {
		s, store := openSession(t, ctx, "a=1")
		require.NoError(t, s.SetValue("a", "2"))
		store.EXPECT().Save(ctx, mock.Anything, pixel.ConfigPath).Return(nil).Once()
		require.NoError(t, s.Save(ctx))

		require.NoError(t, s.SetValue("a", "3"))
		store.EXPECT().Load(ctx, pixel.ConfigPath).Return(mustParse(t, "a=2"), nil)

		res, err := s.Reload(ctx)
		require.NoError(t, err)
		assert.Equal(t, usecase.ReloadUnchanged, res)
		v, _ := s.Get("a")
		assert.Equal(t, "3", v)
		assert.True(t, s.Dirty())
	})

	t.Run("dirty session with untouched file", func(t *testing.T) {
		s, store := openSession(t, ctx, "a=1")
		require.NoError(t, s.SetValue("a", "mine"))
		store.EXPECT().Load(ctx, pixel.ConfigPath).Return(mustParse(t, "a=1"), nil)

		res, err := s.Reload(ctx)
		require.NoError(t, err)
		assert.Equal(t, usecase.ReloadUnchanged, res)
		assert.True(t, s.Dirty())
	})

	t.Run("parse error keeps document", func(t *testing.T) {
		s, store := openSession(t, ctx, "a=1")
		store.EXPECT().Load(ctx, pixel.ConfigPath).Return(nil, &entity.ParseError{Line: 1, Reason: "missing '='"})

		_, err := s.Reload(ctx)
		assert.ErrorIs(t, err, entity.ErrParse)
		v, _ := s.Get("a")
		assert.Equal(t, "1", v)
	})

	t.Run("deleted file empties a clean session", func(t *testing.T) {
		s, store := openSession(t, ctx, "a=1")
		store.EXPECT().Load(ctx, pixel.ConfigPath).Return(nil, entity.ErrConfigNotFound)

		res, err := s.Reload(ctx)
		require.NoError(t, err)
		assert.Equal(t, usecase.ReloadReplaced, res)
		assert.True(t, s.Missing())
		assert.Empty(t, s.Rows())
	})

	t.Run("without an avd", func(t *testing.T) {
		s := usecase.NewEditSession(mocks.NewMockConfigStore(t))
		_, err := s.Reload(ctx)
		assert.ErrorIs(t, err, usecase.ErrNoDocument)
	})
}

func TestEditSession_Revert(t *testing.T) {
	ctx := testContext()
	s, store := openSession(t, ctx, "a=1")
	require.NoError(t, s.SetValue("a", "mine"))

	store.EXPECT().Load(ctx, pixel.ConfigPath).Return(mustParse(t, "a=theirs"), nil)

	require.NoError(t, s.Revert(ctx))
	v, _ := s.Get("a")
	assert.Equal(t, "theirs", v)
	assert.False(t, s.Dirty())
}

func TestEditSession_Revert_UntouchedFile(t *testing.T) {
	ctx := testContext()
	s, store := openSession(t, ctx, "a=1")
	require.NoError(t, s.SetValue("a", "mine"))
	require.NoError(t, s.SetValue("b", "new"))

	store.EXPECT().Load(ctx, pixel.ConfigPath).Return(mustParse(t, "a=1"), nil)

	require.NoError(t, s.Revert(ctx))
	v, _ := s.Get("a")
	assert.Equal(t, "1", v)
	_, ok := s.Get("b")
	assert.False(t, ok)
	assert.False(t, s.Dirty())
}

func TestEditSession_Close(t *testing.T) {
	ctx := testContext()
	s, _ := openSession(t, ctx, "a=1")

	s.Close()

	_, ok := s.Avd()
	assert.False(t, ok)
	assert.Nil(t, s.Rows())
	assert.ErrorIs(t, s.SetValue("a", "2"), usecase.ErrNoDocument)
	_, err := s.Toggle("hw.gps")
	assert.ErrorIs(t, err, usecase.ErrNoDocument)
}

func TestReloadResult_String(t *testing.T) {
	assert.Equal(t, "unchanged", usecase.ReloadUnchanged.String())
	assert.Equal(t, "replaced", usecase.ReloadReplaced.String())
	assert.Equal(t, "conflict", usecase.ReloadConflict.String())
	assert.NotErrorIs(t, errors.New("x"), usecase.ErrNoDocument)
}
