package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brightsign-store/product-agent/internal/model"
	"github.com/brightsign-store/product-agent/internal/store"
)

// scriptedLLM returns canned responses keyed by substring of the prompt.
type scriptedLLM struct {
	responses map[string]string
	calls     int
}

func (s *scriptedLLM) Complete(ctx context.Context, system, user string) (string, error) {
	s.calls++
	for key, resp := range s.responses {
		// the model number always appears as "Model: X" in the prompt
		if key != "" && strings.Contains(user, "Model: "+key) {
			return resp, nil
		}
	}
	return s.responses[""], nil
}

const goodResponse = `{"title":"BrightSign HD226","subtitle":"Full HD přehrávač","description":"<p>ok</p>","seoTitle":"HD226","seoDescription":"popis"}`

func seedStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(t.TempDir())
	require.NoError(t, s.SaveFamily(model.Family{
		Code:   "hd6",
		Series: 6,
		Name:   "HD6",
		Models: []model.Model{
			{Number: "HD226", Specs: map[string]string{"PoE+": "✓", "Video": "Full HD, H.265"}},
			{Number: "HD1026", Specs: map[string]string{"PoE+": "—"}},
		},
	}))
	return s
}

func TestRunGeneratesMissingModels(t *testing.T) {
	st := seedStore(t)
	llmClient := &scriptedLLM{responses: map[string]string{"": goodResponse}}
	g := &Generator{Store: st, LLM: llmClient, Log: zap.NewNop().Sugar()}

	done, failed, err := g.Run(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, done)
	assert.Zero(t, failed)

	entries, err := st.LoadGenerated()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "hd6", entries[0].FamilyCode)
	assert.Equal(t, 6, entries[0].Series)
	// parsed specs derived alongside generation
	byModel := map[string]model.GeneratedContent{}
	for _, e := range entries {
		byModel[e.ModelNumber] = e
	}
	assert.True(t, byModel["HD226"].Specs.PoE)
	assert.False(t, byModel["HD1026"].Specs.PoE)
	assert.Equal(t, []string{"Full HD", "H.265"}, byModel["HD226"].Specs.Video)
}

func TestRunIsIdempotentWithoutOverwrite(t *testing.T) {
	st := seedStore(t)
	llmClient := &scriptedLLM{responses: map[string]string{"": goodResponse}}
	g := &Generator{Store: st, LLM: llmClient, Log: zap.NewNop().Sugar()}

	_, _, err := g.Run(context.Background(), Options{})
	require.NoError(t, err)
	first, err := st.LoadGenerated()
	require.NoError(t, err)
	callsAfterFirst := llmClient.calls

	_, _, err = g.Run(context.Background(), Options{})
	require.NoError(t, err)
	second, err := st.LoadGenerated()
	require.NoError(t, err)

	assert.Equal(t, callsAfterFirst, llmClient.calls, "second run must not call the API")
	assert.Equal(t, first, second, "existing entries unchanged, no duplicates")
}

func TestRunMalformedResponseSkipsModelOnly(t *testing.T) {
	st := seedStore(t)
	llmClient := &scriptedLLM{responses: map[string]string{
		"HD226": "Bohužel vám nemohu pomoci.",
		"":      goodResponse,
	}}
	g := &Generator{Store: st, LLM: llmClient, Log: zap.NewNop().Sugar()}

	done, failed, err := g.Run(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, done)
	assert.Equal(t, 1, failed)

	entries, err := st.LoadGenerated()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "HD1026", entries[0].ModelNumber, "failed model must be absent")
}

func TestRunModelFilter(t *testing.T) {
	st := seedStore(t)
	llmClient := &scriptedLLM{responses: map[string]string{"": goodResponse}}
	g := &Generator{Store: st, LLM: llmClient, Log: zap.NewNop().Sugar()}

	done, _, err := g.Run(context.Background(), Options{Model: "HD226"})
	require.NoError(t, err)
	assert.Equal(t, 1, done)
	assert.Equal(t, 1, llmClient.calls)
}

func TestRunRequiresScrapedData(t *testing.T) {
	st := store.New(t.TempDir())
	g := &Generator{Store: st, LLM: &scriptedLLM{}, Log: zap.NewNop().Sugar()}

	_, _, err := g.Run(context.Background(), Options{})
	assert.ErrorIs(t, err, store.ErrMissing)
}
