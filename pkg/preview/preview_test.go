package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wutup-dev/wutup/pkg/stream"
	"github.com/wutup-dev/wutup/pkg/vdom"
)

func eventBody(t *testing.T, id string, names ...string) *vdom.VNode {
	t.Helper()
	doc := vdom.NewDocument(vdom.El("div", vdom.Table(vdom.ID(id))))
	require.NoError(t, stream.RenderEventStream(doc, id, len(names), names))
	return stream.Body(doc, id)
}

func TestRowsEventStream(t *testing.T) {
	rows := Rows(eventBody(t, stream.CurrentEventStreamID, "Picnic"))
	require.Len(t, rows, 1)
	assert.Equal(t, []string{
		"Attend Decline",
		"[img Llamas]",
		"Picnic IT'S GOING TO BE A LLAMA PALOOZA",
		"time goes here",
	}, rows[0])
}

func TestRowsOtherStream(t *testing.T) {
	rows := Rows(eventBody(t, "past", "A", "B"))
	require.Len(t, rows, 2)
	assert.Len(t, rows[0], 3)
	assert.Equal(t, "B IT'S GOING TO BE A LLAMA PALOOZA", rows[1][1])
}

func TestTable(t *testing.T) {
	out := Table(eventBody(t, "past", "Picnic", "Hackathon"))
	assert.Contains(t, out, "Picnic")
	assert.Contains(t, out, "Hackathon")
	assert.Contains(t, out, "[img Llamas]")
	assert.Contains(t, out, "col 3")
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 4)
}

func TestTableEmpty(t *testing.T) {
	assert.Equal(t, "", Table(nil))
	assert.Equal(t, "", Table(vdom.Tbody()))
}
