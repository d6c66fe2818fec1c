package agent

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swr-analysis/swr"
	"google.golang.org/genai"
)

type fakeSimulator struct {
	queries []swr.Query
	err     error
}

func (f *fakeSimulator) Simulate(_ context.Context, q swr.Query) (swr.Results, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return swr.Results{}, f.err
	}
	return swr.Results{Successes: 95, Failures: 5, SuccessRate: 95, TVMedian: 1500}, nil
}

func TestSimulateFunc(t *testing.T) {
	sim := &fakeSimulator{}
	lib := NewLibrary([]Function{SimulateFunc(sim, swr.DefaultQuery(), "USD")})

	resp := lib(context.Background(), &genai.FunctionCall{
		ID:   "1",
		Name: "simulate",
		Args: map[string]any{
			"portfolio":       "us_stocks:60;us_bonds:40;",
			"withdrawal_rate": 3.5,
			"years":           float64(40),
			"rebalance":       "yearly",
		},
	})

	require.Len(t, sim.queries, 1)
	q := sim.queries[0]
	assert.Equal(t, "us_stocks:60;us_bonds:40;", q.Portfolio.String())
	assert.Equal(t, "3.5", q.WithdrawalRate.String())
	assert.Equal(t, 40, q.Years)
	assert.Equal(t, swr.RebalanceYearly, q.Rebalance)
	assert.Equal(t, swr.DefaultQuery().Start, q.Start)

	assert.Equal(t, "1", resp.ID)
	assert.Equal(t, "simulate", resp.Name)
	output, ok := resp.Response["output"].(string)
	require.True(t, ok, "response: %v", resp.Response)
	assert.Contains(t, output, "95.00%")
	assert.Contains(t, output, "$1,500.00")
}

func TestSimulateFuncErrors(t *testing.T) {
	sim := &fakeSimulator{err: errors.New("boom")}
	f := SimulateFunc(sim, swr.DefaultQuery(), "USD")

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"portfolio type", map[string]any{"portfolio": 12.0}, "not a string"},
		{"bad portfolio", map[string]any{"portfolio": "us_stocks"}, "invalid position"},
		{"years type", map[string]any{"years": "thirty"}, "not a number"},
		{"invalid query", map[string]any{"start": 2000.0, "end": 1990.0}, "after end year"},
		{"simulator", map[string]any{}, "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := f.Call(context.Background(), "id", tt.args)
			msg, ok := resp.Response["error"].(string)
			require.True(t, ok, "response: %v", resp.Response)
			assert.Contains(t, msg, tt.want)
		})
	}
}

func TestLibraryUnknownFunction(t *testing.T) {
	lib := NewLibrary([]Function{TopicFunc})
	resp := lib(context.Background(), &genai.FunctionCall{ID: "7", Name: "nope"})
	assert.Equal(t, "7", resp.ID)
	assert.Equal(t, "unknown function nope", resp.Response["error"])
}

func TestTopicFunc(t *testing.T) {
	resp := TopicFunc.Call(context.Background(), "1", map[string]any{"topic": "convert"})
	output, _ := resp.Response["output"].(string)
	assert.True(t, strings.HasPrefix(output, "# convert"))

	resp = TopicFunc.Call(context.Background(), "2", map[string]any{"topic": "nope"})
	assert.Contains(t, resp.Response["error"], "not found")
}

func TestExpertCallInvalidQuestion(t *testing.T) {
	e := NewResearcher()
	resp := e.Call(context.Background(), "1", map[string]any{"question": 42})
	assert.Equal(t, "Researcher", resp.Name)
	assert.Contains(t, resp.Response["error"], "expected string")
}

func TestFacilitatorDeclaresExperts(t *testing.T) {
	a := New(nil, strings.NewReader(""), NewResearcher(), NewAnalyst(&fakeSimulator{}, swr.DefaultQuery(), "USD"))
	decls := a.Facilitator.Config.Tools[0].FunctionDeclarations
	require.Len(t, decls, 2)
	assert.Equal(t, "Researcher", decls[0].Name)
	assert.Equal(t, "Analyst", decls[1].Name)
	assert.Equal(t, []string{"question"}, decls[1].Parameters.Required)
}

func TestAgentNextQuestion(t *testing.T) {
	var out strings.Builder
	a := New(&out, strings.NewReader("\n  typed question \nlast"), NewResearcher())
	a.queued = []string{"queued", "   "}

	var got []string
	for {
		q, err := a.next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		got = append(got, q)
	}
	assert.Equal(t, []string{"queued", "typed question", "last"}, got)
	assert.True(t, strings.HasPrefix(out.String(), prompt+"queued\n"))

	a = New(&out, strings.NewReader("bye\nnever read\n"), NewResearcher())
	_, err := a.next()
	assert.ErrorIs(t, err, io.EOF)
}
