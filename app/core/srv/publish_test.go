package srv

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moodlingo/moodlingo/pkg/types"
)

func TestPublishDataJSONRoundTrip(t *testing.T) {
	in := &PublishData{
		Subject: "entry_created",
		Version: "v1",
		Type:    types.WS_EVENT_ENTRY_CREATED,
		Data:    map[string]string{"id": "42"},
	}

	raw, err := json.Marshal(in)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), `"subject":"entry_created"`)

	var out PublishData
	assert.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in.Subject, out.Subject)
	assert.Equal(t, in.Version, out.Version)
	assert.Equal(t, in.Type, out.Type)
}

func TestPublishDataMarshalNil(t *testing.T) {
	var p *PublishData

	raw, err := p.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `""`, string(raw))

	var out PublishData
	assert.NoError(t, out.UnmarshalJSON(raw))
	assert.Empty(t, out.Subject)
}
