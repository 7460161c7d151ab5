package formatter_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/KimNorgaard/go-ajson/ast"
	"github.com/KimNorgaard/go-ajson/errors"
	"github.com/KimNorgaard/go-ajson/internal/formatter"
	"github.com/stretchr/testify/require"
)

// Centralized test cases to be used across different format settings.
var testCases = []struct {
	name             string
	nodes            ast.Nodes
	expectedCompact  string
	expectedIndented string // 2 spaces
}{
	{
		name:             "Empty",
		nodes:            ast.Nodes{},
		expectedCompact:  "[\n\n]\n",
		expectedIndented: "[\n\n]\n",
	},
	{
		name:             "Single comment",
		nodes:            ast.Nodes{&ast.Comment{Text: "hello"}},
		expectedCompact:  "[\n\"hello\"\n]\n",
		expectedIndented: "[\n  \"hello\"\n]\n",
	},
	{
		name:             "Blank line comment",
		nodes:            ast.Nodes{&ast.Comment{Text: "a"}, &ast.Comment{}},
		expectedCompact:  "[\n\"a\",\n\n\"\"\n]\n",
		expectedIndented: "[\n  \"a\",\n\n  \"\"\n]\n",
	},
	{
		name:             "Scalar leaf",
		nodes:            ast.Nodes{&ast.Leaf{Name: "port", Value: 8080}},
		expectedCompact:  "[\n{\"port\": 8080}\n]\n",
		expectedIndented: "[\n  {\"port\": 8080}\n]\n",
	},
	{
		name: "Object leaf",
		nodes: ast.Nodes{
			&ast.Leaf{Name: "limits", Value: map[string]any{"memory": "512Mi", "cpu": 1.5}},
		},
		expectedCompact:  "[\n{\"limits\": {\"cpu\":1.5,\"memory\":\"512Mi\"}}\n]\n",
		expectedIndented: "[\n  {\"limits\": {\n    \"cpu\": 1.5,\n    \"memory\": \"512Mi\"\n  }}\n]\n",
	},
	{
		name:             "Array leaf",
		nodes:            ast.Nodes{&ast.Leaf{Name: "list", Value: []any{1.0, "two"}}},
		expectedCompact:  "[\n{\"list\": [1,\"two\"]}\n]\n",
		expectedIndented: "[\n  {\"list\": [\n    1,\n    \"two\"\n  ]}\n]\n",
	},
	{
		name:             "Empty containers stay inline",
		nodes:            ast.Nodes{&ast.Leaf{Name: "m", Value: map[string]any{}}, &ast.Leaf{Name: "l", Value: []any{}}},
		expectedCompact:  "[\n{\"m\": {}},\n{\"l\": []}\n]\n",
		expectedIndented: "[\n  {\"m\": {}},\n  {\"l\": []}\n]\n",
	},
	{
		name: "Section",
		nodes: ast.Nodes{
			&ast.Section{Name: "server", Children: ast.Nodes{
				&ast.Comment{Text: "c"},
				&ast.Leaf{Name: "port", Value: 1},
			}},
		},
		expectedCompact:  "[\n[\"server\", [\n\"c\",\n{\"port\": 1}\n]]\n]\n",
		expectedIndented: "[\n  [\"server\", [\n    \"c\",\n    {\"port\": 1}\n  ]]\n]\n",
	},
	{
		name:             "Empty section",
		nodes:            ast.Nodes{&ast.Section{Name: "s"}},
		expectedCompact:  "[\n[\"s\", [\n\n]]\n]\n",
		expectedIndented: "[\n  [\"s\", [\n\n  ]]\n]\n",
	},
	{
		name: "Leaf inside nested section",
		nodes: ast.Nodes{
			&ast.Section{Name: "a", Children: ast.Nodes{
				&ast.Section{Name: "b", Children: ast.Nodes{
					&ast.Leaf{Name: "l", Value: []any{true}},
				}},
			}},
		},
		expectedCompact:  "[\n[\"a\", [\n[\"b\", [\n{\"l\": [true]}\n]]\n]]\n]\n",
		expectedIndented: "[\n  [\"a\", [\n    [\"b\", [\n      {\"l\": [\n        true\n      ]}\n    ]]\n  ]]\n]\n",
	},
}

func TestFormatter_Indentation(t *testing.T) {
	t.Run("Default Indent (2 spaces)", func(t *testing.T) {
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				var buf bytes.Buffer
				f := formatter.New(&buf, 2, "\n")
				err := f.Format(tc.nodes)
				require.NoError(t, err)
				require.Equal(t, tc.expectedIndented, buf.String())
			})
		}
	})

	t.Run("Compact Output (indent 0)", func(t *testing.T) {
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				var buf bytes.Buffer
				f := formatter.New(&buf, 0, "\n")
				err := f.Format(tc.nodes)
				require.NoError(t, err)
				require.Equal(t, tc.expectedCompact, buf.String())
			})
		}
	})

	t.Run("Custom Indent (4 spaces)", func(t *testing.T) {
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				var buf bytes.Buffer
				f := formatter.New(&buf, 4, "\n")
				expected := strings.ReplaceAll(tc.expectedIndented, "  ", "    ")
				err := f.Format(tc.nodes)
				require.NoError(t, err)
				require.Equal(t, expected, buf.String())
			})
		}
	})

	t.Run("CRLF line terminator", func(t *testing.T) {
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				var buf bytes.Buffer
				f := formatter.New(&buf, 2, "\r\n")
				expected := strings.ReplaceAll(tc.expectedIndented, "\n", "\r\n")
				err := f.Format(tc.nodes)
				require.NoError(t, err)
				require.Equal(t, expected, buf.String())
			})
		}
	})
}

func TestFormatter_Errors(t *testing.T) {
	testCases := []struct {
		name         string
		nodes        ast.Nodes
		expectedPath string
	}{
		{
			name:         "Nil node",
			nodes:        ast.Nodes{&ast.Comment{Text: "ok"}, nil},
			expectedPath: "/1",
		},
		{
			name:         "Nil typed node in section",
			nodes:        ast.Nodes{&ast.Section{Name: "s", Children: ast.Nodes{(*ast.Leaf)(nil)}}},
			expectedPath: "/0/1/0",
		},
		{
			name:         "Unencodable leaf value",
			nodes:        ast.Nodes{&ast.Leaf{Name: "ch", Value: make(chan int)}},
			expectedPath: "/0",
		},
		{
			name:         "Invalid UTF-8 in comment",
			nodes:        ast.Nodes{&ast.Comment{Text: "bad \xff byte"}},
			expectedPath: "/0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := formatter.New(&buf, 2, "\n").Format(tc.nodes)

			var target *errors.InvalidAnnotatedJSONError
			require.ErrorAs(t, err, &target)
			require.Equal(t, tc.expectedPath, target.Path)
			require.Zero(t, buf.Len(), "nothing is written when formatting fails")
		})
	}
}
