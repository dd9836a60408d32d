package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingCli struct {
	LogClient
	names []string
	tags  [][]string
}

func (r *recordingCli) Count(name string, value int64, tags []string, rate float64) error {
	r.names = append(r.names, name)
	r.tags = append(r.tags, tags)
	return nil
}

func TestBumpSumPrefixesKeyAndTags(t *testing.T) {
	req := require.New(t)
	cli := &recordingCli{}
	m := &Metrics{pkgName: "pipeline", tags: []string{"env:test"}, cli: cli}

	m.BumpSum("sweep.endAuction", 1, "result", "ok")

	req.Equal([]string{"pipeline.sweep.endAuction"}, cli.names)
	req.Equal([]string{"env:test", "result:ok"}, cli.tags[0])
}

func TestOddTagsDoNotPanic(t *testing.T) {
	m := &Metrics{pkgName: "pipeline", cli: &LogClient{}}
	require.NotPanics(t, func() {
		m.BumpSum("fetch.err", 1, "dangling")
	})
}

func TestNewWithoutAgentUsesLogClient(t *testing.T) {
	m := New("test").(*Metrics)
	_, ok := m.cli.(*LogClient)
	require.True(t, ok)
	m.BumpTime("noop").End()
}
