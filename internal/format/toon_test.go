package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTOON(t *testing.T) {
	cases := []struct {
		name string
		json string
		want string
	}{
		{
			name: "flat_object",
			json: `{"id":"prm_1","name":"greeting","published":true,"number":3}`,
			want: "id: prm_1\nname: greeting\npublished: true\nnumber: 3",
		},
		{
			name: "nested_object",
			json: `{"run_id":"run_1","usage":{"input_tokens":12,"output_tokens":40}}`,
			want: "run_id: run_1\nusage:\n  input_tokens: 12\n  output_tokens: 40",
		},
		{
			name: "primitive_array",
			json: `{"tags":["demo","prod"]}`,
			want: "tags[2]: demo,prod",
		},
		{
			name: "empty_array",
			json: `{"data":[]}`,
			want: "data[0]:",
		},
		{
			name: "tabular_array",
			json: `{"data":[{"id":"p1","name":"a"},{"id":"p2","name":"b"}],"metadata":{"page":1,"total":2}}`,
			want: "data[2]{id,name}:\n  p1,a\n  p2,b\nmetadata:\n  page: 1\n  total: 2",
		},
		{
			name: "mixed_keys_fall_back_to_list",
			json: `{"data":[{"id":"p1"},{"id":"p2","name":"b"}]}`,
			want: "data[2]:\n  - id: p1\n  - id: p2\n    name: b",
		},
		{
			name: "nested_values_fall_back_to_list",
			json: `{"data":[{"id":"p1","tags":["x"]}]}`,
			want: "data[1]:\n  - id: p1\n    tags[1]: x",
		},
		{
			name: "root_array",
			json: `[1,2,3]`,
			want: "[3]: 1,2,3",
		},
		{
			name: "root_scalar",
			json: `"hello"`,
			want: "hello",
		},
		{
			name: "quoting",
			json: `{"a":"","b":"x, y","c":"true","d":"42","e":" pad","f":"line\nbreak","g":"- item","h":null}`,
			want: "a: \"\"\nb: \"x, y\"\nc: \"true\"\nd: \"42\"\ne: \" pad\"\nf: \"line\\nbreak\"\ng: \"- item\"\nh: null",
		},
		{
			name: "hyphen_list_for_mixed_array",
			json: `{"items":[1,{"a":2}]}`,
			want: "items[2]:\n  - 1\n  - a: 2",
		},
		{
			name: "html_and_unicode_left_alone",
			json: `{"template":"<b>{{x}}</b> & café"}`,
			want: "template: \"<b>{{x}}</b> & café\"",
		},
		{
			name: "quoted_keys",
			json: `{"my key":1,"snake_case":2}`,
			want: "\"my key\": 1\nsnake_case: 2",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := decodeOrdered([]byte(tc.json))
			require.NoError(t, err)

			got, err := EncodeTOON(doc)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEncodeTOON_MapsUseSortedKeys(t *testing.T) {
	v := map[string]any{"b": 2.0, "a": "x", "c": []any{map[string]any{"k": 1.0}, map[string]any{"k": 2.0}}}

	got, err := EncodeTOON(v)
	require.NoError(t, err)
	assert.Equal(t, "a: x\nb: 2\nc[2]{k}:\n  1\n  2", got)
}

func TestEncodeTOON_ObjectInsideMapKeepsOrder(t *testing.T) {
	v := map[string]any{"prompt": Object{{Key: "z", Value: "last"}, {Key: "a", Value: "first"}}}

	got, err := EncodeTOON(v)
	require.NoError(t, err)
	assert.Equal(t, "prompt:\n  z: last\n  a: first", got)
}

func TestEncodeTOON_RejectsControlCharacters(t *testing.T) {
	_, err := EncodeTOON(Object{{Key: "bell", Value: "ding\a"}})
	assert.Error(t, err)
}

func TestDecodeOrdered_KeepsKeyOrder(t *testing.T) {
	doc, err := decodeOrdered([]byte(`{"z":1,"a":{"y":true,"b":null}}`))
	require.NoError(t, err)

	obj, ok := doc.(Object)
	require.True(t, ok)
	require.Len(t, obj, 2)
	assert.Equal(t, "z", obj[0].Key)
	assert.Equal(t, "a", obj[1].Key)

	inner, ok := obj[1].Value.(Object)
	require.True(t, ok)
	assert.Equal(t, "y", inner[0].Key)
	assert.Equal(t, "b", inner[1].Key)
}

func TestDecodeOrdered_TrailingData(t *testing.T) {
	_, err := decodeOrdered([]byte(`{} {}`))
	assert.Error(t, err)
}

func TestObject_MarshalJSON(t *testing.T) {
	b, err := Object{{Key: "z", Value: 1}, {Key: "a", Value: []any{"x"}}}.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"z":1,"a":["x"]}`, string(b))
	assert.Equal(t, `{"z":1,"a":["x"]}`, string(b))
}
