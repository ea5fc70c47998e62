package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trongkhoidev/JDice-Team3/internal/dice"
	"gopkg.in/yaml.v3"
)

func sampleOutcome(t *testing.T) Outcome {
	t.Helper()
	specs, err := dice.Parse("2x3d8-5 ; d6 & d4")
	require.NoError(t, err)
	src := dice.NewSequenceSource(4, 2, 7, 1, 1, 6, 5, 3)
	return NewOutcome("", "2x3d8-5 ; d6 & d4", specs, src)
}

func TestNewOutcome(t *testing.T) {
	o := sampleOutcome(t)
	require.Len(t, o.Results, 3)

	assert.Equal(t, Line{Notation: "3d8-5", Rolls: []int{4, 2, 7}, Modifier: -5, Total: 8}, o.Results[0])
	assert.Equal(t, Line{Notation: "3d8-5", Rolls: []int{1, 1, 6}, Modifier: -5, Total: 3}, o.Results[1])
	assert.Equal(t, Line{Notation: "1d6 & 1d4", Rolls: []int{5, 3}, Modifier: 0, Total: 8}, o.Results[2])
	assert.Equal(t, 19, o.GrandTotal())
}

func TestText(t *testing.T) {
	o := sampleOutcome(t)
	want := "Results for 2x3d8-5 ; d6 & d4:\n" +
		"3d8-5: [4 2 7] -5 = 8\n" +
		"3d8-5: [1 1 6] -5 = 3\n" +
		"1d6 & 1d4: [5 3] = 8"
	assert.Equal(t, want, o.Text())

	o.Actor = "Elara"
	assert.Contains(t, o.Text(), "Elara rolls 2x3d8-5 ; d6 & d4:")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sampleOutcome(t)))

	var got []Outcome
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, sampleOutcome(t), got[0])
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, sampleOutcome(t)))
	assert.Contains(t, buf.String(), "rolls: [4, 2, 7]")

	var got []Outcome
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, sampleOutcome(t), got[0])
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, sampleOutcome(t)))
	assert.Equal(t, sampleOutcome(t).Text()+"\n", buf.String())
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "TEXT": FormatText, " json ": FormatJSON, "yaml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}
