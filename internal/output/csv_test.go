// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/stackexchange-best/internal/search"
)

func records(t *testing.T, objs ...string) []search.Record {
	t.Helper()
	out := make([]search.Record, len(objs))
	for i, o := range objs {
		require.NoError(t, json.Unmarshal([]byte(o), &out[i]))
	}
	return out
}

func mustDialect(t *testing.T, name string) Dialect {
	t.Helper()
	d, err := LookupDialect(name)
	require.NoError(t, err)
	return d
}

func TestWriter_SelectsFieldsInOrder(t *testing.T) {
	items := records(t,
		`{"score": 10, "title": "First", "link": "https://x/1", "tags": ["a"]}`,
		`{"tags": ["b"], "link": "https://x/2", "title": "Second", "score": 20}`,
	)
	var buf bytes.Buffer
	w := NewWriter(&buf, []string{"score", "title"}, mustDialect(t, "unix"), false)

	require.NoError(t, w.WriteResult(&search.Result{Items: items}))
	assert.Equal(t, "\"10\",\"First\"\n\"20\",\"Second\"\n", buf.String())
}

func TestWriter_MissingFieldsAreEmpty(t *testing.T) {
	items := records(t, `{"score": 1}`)
	var buf bytes.Buffer
	w := NewWriter(&buf, []string{"score", "bogus", "title"}, mustDialect(t, "excel"), false)

	require.NoError(t, w.WriteResult(&search.Result{Items: items}))
	assert.Equal(t, "1,,\r\n", buf.String())
}

func TestWriter_AllUsesFirstRecordOrder(t *testing.T) {
	items := records(t,
		`{"a": 1, "b": "x"}`,
		`{"b": "y", "c": true, "a": 2}`,
	)
	var buf bytes.Buffer
	w := NewWriter(&buf, []string{"all"}, mustDialect(t, "excel"), true)
	assert.Nil(t, w.Fields())

	require.NoError(t, w.WriteResult(&search.Result{Items: items}))
	assert.Equal(t, []string{"a", "b"}, w.Fields())
	assert.Equal(t, "a,b\r\n1,x\r\n2,y\r\n", buf.String())
}

func TestWriter_AllAnywhereInList(t *testing.T) {
	items := records(t, `{"x": 1, "y": 2}`)
	var buf bytes.Buffer
	w := NewWriter(&buf, []string{"score", "all"}, mustDialect(t, "excel"), false)

	require.NoError(t, w.WriteResult(&search.Result{Items: items}))
	assert.Equal(t, "1,2\r\n", buf.String())
}

func TestWriter_HeaderOnceAcrossPages(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, []string{"score", "title"}, mustDialect(t, "unix"), true)

	require.NoError(t, w.WriteResult(&search.Result{Items: records(t, `{"score": 1, "title": "a"}`)}))
	require.NoError(t, w.WriteResult(&search.Result{}))
	require.NoError(t, w.WriteResult(&search.Result{Items: records(t, `{"score": 2, "title": "b"}`)}))

	assert.Equal(t, "\"score\",\"title\"\n\"1\",\"a\"\n\"2\",\"b\"\n", buf.String())
}

func TestWriter_NoRecordsNoOutput(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, []string{"score"}, mustDialect(t, "unix"), true)
	require.NoError(t, w.WriteResult(&search.Result{}))
	assert.Empty(t, buf.String())
}

func TestDialects(t *testing.T) {
	items := records(t, `{"score": 5, "title": "Say \"hi\", then\tleave"}`)
	tests := []struct {
		dialect string
		want    string
	}{
		{"excel", "5,\"Say \"\"hi\"\", then\tleave\"\r\n"},
		{"excel-tab", "5\t\"Say \"\"hi\"\", then\tleave\"\r\n"},
		{"unix", "\"5\",\"Say \"\"hi\"\", then\tleave\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf, []string{"score", "title"}, mustDialect(t, tt.dialect), false)
			require.NoError(t, w.WriteResult(&search.Result{Items: items}))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLookupDialect_Unknown(t *testing.T) {
	_, err := LookupDialect("tsv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "excel, excel-tab, unix")
}

func TestDialectNames(t *testing.T) {
	assert.Equal(t, []string{"excel", "excel-tab", "unix"}, DialectNames())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriter_PropagatesWriteErrors(t *testing.T) {
	for _, name := range DialectNames() {
		t.Run(name, func(t *testing.T) {
			w := NewWriter(failingWriter{}, []string{"score"}, mustDialect(t, name), false)
			err := w.WriteResult(&search.Result{Items: records(t, `{"score": 1}`)})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "broken pipe")
		})
	}
}
