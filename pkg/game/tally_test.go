package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTally_Increment(t *testing.T) {
	tally := NewTally()

	assert.Equal(t, 1, tally.Increment("red"))
	assert.Equal(t, 1, tally.Increment("blue"))
	assert.Equal(t, 2, tally.Increment("red"))

	assert.Equal(t, 2, tally.Wins("red"))
	assert.Equal(t, 1, tally.Wins("blue"))
	assert.Equal(t, 0, tally.Wins("green"))
	assert.Equal(t, 2, tally.Len())
	assert.Equal(t, []TallyEntry{{Team: "red", Wins: 2}, {Team: "blue", Wins: 1}}, tally.Entries())
}

func TestTally_CloneIsIndependent(t *testing.T) {
	tally := NewTally()
	tally.Increment("red")

	clone := tally.Clone()
	clone.Increment("red")
	clone.Increment("teal")

	assert.Equal(t, 1, tally.Wins("red"))
	assert.Equal(t, 1, tally.Len())
	assert.Equal(t, 2, clone.Wins("red"))
}

func TestTally_MarshalJSONKeepsOrder(t *testing.T) {
	tally := NewTally()
	tally.Increment("yellow")
	tally.Increment("blue")
	tally.Increment("yellow")

	data, err := json.Marshal(tally)
	require.NoError(t, err)
	assert.Equal(t, `{"yellow":2,"blue":1}`, string(data))

	data, err = json.Marshal(NewTally())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestTally_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []TallyEntry
		wantErr bool
	}{
		{name: "保留键顺序", input: `{"teal":4,"red":2}`, want: []TallyEntry{{"teal", 4}, {"red", 2}}},
		{name: "空对象", input: `{}`, want: []TallyEntry{}},
		{name: "null", input: `null`, want: []TallyEntry{}},
		{name: "负数", input: `{"red":-1}`, wantErr: true},
		{name: "小数", input: `{"red":1.5}`, wantErr: true},
		{name: "字符串值", input: `{"red":"2"}`, wantErr: true},
		{name: "数组", input: `[1,2]`, wantErr: true},
		{name: "截断", input: `{"red":2`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tally := NewTally()
			err := json.Unmarshal([]byte(tt.input), tally)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tally.Entries())
		})
	}
}

func TestTally_RoundTrip(t *testing.T) {
	tally := NewTally()
	for _, team := range []string{"green", "red", "green", "brown", "green"} {
		tally.Increment(team)
	}

	data, err := json.Marshal(tally)
	require.NoError(t, err)

	decoded := NewTally()
	require.NoError(t, json.Unmarshal(data, decoded))
	assert.Equal(t, tally.Entries(), decoded.Entries())
}
