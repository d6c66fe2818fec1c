package cmd

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// simulator starts a fake simulation service. The median terminal value is the start
// year, and simulations starting in 1973 fail.
func simulator(t *testing.T) *atomic.Int32 {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/simple", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		q := r.URL.Query()
		start, _ := strconv.Atoi(q.Get("start"))
		if start == 1973 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, `{"results":{"successes":9,"failures":1,"success_rate":90,"tv_median":%d,"worst_duration":300,"worst_starting_year":1966,"worst_starting_month":1,"message":%q,"error":false}}`,
			start, q.Get("portfolio")+" "+q.Get("rebalance")+" "+q.Get("wr"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	t.Cleanup(setGlobal(apiURL, srv.URL))
	return &calls
}

func TestSimulateCmd(t *testing.T) {
	simulator(t)

	status, out, errOut := run(t, &simulateCmd{}, "-portfolio", "gold:100;", "-rebalance", "yearly", "-wr", "3.5", "-start", "1990")
	require.Equal(t, subcommands.ExitSuccess, status, errOut)
	assert.Contains(t, out, "gold:100; yearly 3.5")
	assert.Contains(t, out, "$1,990.00")
	assert.Contains(t, out, "1966-01")
}

func TestSimulateCmdErrors(t *testing.T) {
	simulator(t)

	status, _, _ := run(t, &simulateCmd{}, "-portfolio", "gold")
	assert.Equal(t, subcommands.ExitUsageError, status)

	status, _, _ = run(t, &simulateCmd{}, "-rebalance", "daily")
	assert.Equal(t, subcommands.ExitUsageError, status)

	status, _, errOut := run(t, &simulateCmd{}, "-start", "1973")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, errOut, "500")
}

func TestBalanceCmd(t *testing.T) {
	calls := simulator(t)

	status, out, errOut := run(t, &balanceCmd{},
		"-from", "1970", "-to", "1976", "-step", "3",
		"-portfolio", "us_stocks:60;us_bonds:40;", "-portfolio", "gold:100;",
		"-rebalance", "none,yearly",
	)
	require.Equal(t, subcommands.ExitSuccess, status, errOut)
	// 2 strategies x 2 portfolios x 2 years.
	assert.EqualValues(t, 8, calls.Load())
	assert.Contains(t, errOut, "4 of 8 simulations failed")

	assert.Contains(t, out, "Rebalancing: none")
	assert.Contains(t, out, "Rebalancing: yearly")
	assert.Contains(t, out, "gold:100;")
	assert.Contains(t, out, "$1,970.00")
	assert.Less(t, strings.Index(out, "none"), strings.Index(out, "yearly"))
}

func TestBalanceCmdDefaults(t *testing.T) {
	calls := simulator(t)

	status, out, errOut := run(t, &balanceCmd{}, "-from", "1970", "-to", "1971", "-metric", "success_rate")
	require.Equal(t, subcommands.ExitSuccess, status, errOut)
	// 3 strategies x 3 portfolios x 1 year.
	assert.EqualValues(t, 9, calls.Load())
	assert.Contains(t, out, "us_stocks:50;us_bonds:50;")
	assert.Contains(t, out, "Rebalancing: monthly")
	assert.Contains(t, out, "90.00")
}

func TestBalanceCmdAllFail(t *testing.T) {
	simulator(t)

	status, out, _ := run(t, &balanceCmd{}, "-from", "1973", "-to", "1974")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Empty(t, out)

	status, _, _ = run(t, &balanceCmd{}, "-from", "1980", "-to", "1970")
	assert.Equal(t, subcommands.ExitUsageError, status)
}
