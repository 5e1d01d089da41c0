package processor

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgergames/battleship/internal/entity"
	"github.com/ledgergames/battleship/internal/repository"
)

func newProcessor() (*Processor, *repository.MemoryRepository) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	store := repository.NewMemoryRepository()

	return New(logger, store), store
}

func TestProcessor_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("Applies a valid create", func(t *testing.T) {
		// Given: a processor over an empty store
		proc, store := newProcessor()

		// When: a create transaction is executed
		verdict, err := proc.Execute(ctx, []byte(`{"Name":"Abc12","Action":"CREATE"}`), "alice")

		// Then: the verdict is applied and the game exists in NEW state
		require.NoError(t, err)
		assert.Equal(t, StatusApplied, verdict.Status)
		assert.Equal(t, "Abc12", verdict.Name)
		assert.Equal(t, "CREATE", verdict.Action)

		game, err := store.Get(ctx, "Abc12")
		require.NoError(t, err)
		assert.Equal(t, entity.StateNew, game.State)
	})

	t.Run("Rejects malformed JSON without crashing", func(t *testing.T) {
		// Given: a processor over an empty store
		proc, _ := newProcessor()

		// When: a truncated record is executed
		verdict, err := proc.Execute(ctx, []byte(`{"Name":`), "alice")

		// Then: the verdict is a structural rejection
		require.NoError(t, err)
		assert.Equal(t, StatusRejected, verdict.Status)
		assert.True(t, verdict.Structural)
		assert.NotEmpty(t, verdict.Reason)
	})

	t.Run("Rejects a rule violation with a stable reason", func(t *testing.T) {
		// Given: a processor with an existing game
		proc, _ := newProcessor()
		_, err := proc.Execute(ctx, []byte(`{"Name":"Abc12","Action":"CREATE"}`), "alice")
		require.NoError(t, err)

		// When: a duplicate create is executed twice
		first, err := proc.Execute(ctx, []byte(`{"Name":"Abc12","Action":"CREATE"}`), "bob")
		require.NoError(t, err)
		second, err := proc.Execute(ctx, []byte(`{"Name":"Abc12","Action":"CREATE"}`), "bob")
		require.NoError(t, err)

		// Then: both verdicts carry the same rejection
		assert.Equal(t, StatusRejected, first.Status)
		assert.False(t, first.Structural)
		assert.Equal(t, first, second)
	})

	t.Run("Rejects a missing name as structural", func(t *testing.T) {
		// Given: a processor over an empty store
		proc, _ := newProcessor()

		// When: a record without a name is executed
		verdict, err := proc.Execute(ctx, []byte(`{"Action":"CREATE"}`), "alice")

		// Then: the verdict is a structural rejection
		require.NoError(t, err)
		assert.Equal(t, StatusRejected, verdict.Status)
		assert.True(t, verdict.Structural)
	})

	t.Run("Plays a full opening through the processor", func(t *testing.T) {
		// Given: a processor over an empty store
		proc, store := newProcessor()

		boardJSON := `["AAAAA-----","BBBB------","CCC-------","SSS-------","DD--------","----------","----------","----------","----------","----------"]`

		// When: create, two joins and an opening shot are executed
		records := []struct {
			raw    string
			signer string
		}{
			{`{"Name":"Abc12","Action":"CREATE"}`, "alice"},
			{`{"Name":"Abc12","Action":"JOIN","Board":` + boardJSON + `}`, "alice"},
			{`{"Name":"Abc12","Action":"JOIN","Board":` + boardJSON + `}`, "bob"},
			{`{"Name":"Abc12","Action":"FIRE","Column":"J","Row":10}`, "alice"},
		}

		for _, record := range records {
			verdict, err := proc.Execute(ctx, []byte(record.raw), record.signer)
			require.NoError(t, err)
			require.Equal(t, StatusApplied, verdict.Status, "record %s", record.raw)
		}

		// Then: the shot missed and it is bob's turn
		game, err := store.Get(ctx, "Abc12")
		require.NoError(t, err)
		assert.Equal(t, entity.StateP2Next, game.State)
		assert.EqualValues(t, entity.CellMiss, game.TargetBoard1.At(9, 9))
	})
}
