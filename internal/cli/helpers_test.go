package cli

import (
	"bytes"
	"testing"

	"github.com/roach88/levels/internal/testutil"
)

// execute runs the command tree with args and a fixed run ID.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := newRootCommand(&RootOptions{RunIDs: testutil.NewFixedRunIDGenerator("test-run-fixed")})
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}
