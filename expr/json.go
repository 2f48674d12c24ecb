// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expr

import (
	"encoding/json"
	"strconv"

	"code.hybscloud.com/parsek"
)

type jsonNode struct {
	Kind     string         `json:"kind"`
	At       *jsonPosition  `json:"at,omitempty"`
	Value    string         `json:"value,omitempty"`
	Children []*jsonNode    `json:"children,omitempty"`
	Trailing []*jsonComment `json:"trailing,omitempty"`
}

type jsonPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type jsonComment struct {
	Text string       `json:"text"`
	At   jsonPosition `json:"at"`
}

func jsonPos(at parsek.Position) *jsonPosition {
	return &jsonPosition{Line: at.Line, Column: at.Column}
}

func nodeJSON(e Expr) *jsonNode {
	switch n := e.(type) {
	case *IntLit:
		return &jsonNode{Kind: "IntLit", At: jsonPos(n.At), Value: strconv.FormatInt(n.Value, 10)}
	case *Ref:
		return &jsonNode{Kind: "Ref", At: jsonPos(n.At), Value: n.Name}
	case *Unary:
		return &jsonNode{Kind: "Unary", At: jsonPos(n.At), Value: n.Op.String(),
			Children: []*jsonNode{nodeJSON(n.Operand)}}
	case *Binary:
		return &jsonNode{Kind: "Binary", At: jsonPos(n.At), Value: n.Op.String(),
			Children: []*jsonNode{nodeJSON(n.Left), nodeJSON(n.Right)}}
	case *Let:
		return &jsonNode{Kind: "Let", At: jsonPos(n.At), Value: n.Name,
			Children: []*jsonNode{nodeJSON(n.Value), nodeJSON(n.Body)}}
	case *Call:
		children := make([]*jsonNode, len(n.Args))
		for i, a := range n.Args {
			children[i] = nodeJSON(a)
		}
		return &jsonNode{Kind: "Call", At: jsonPos(n.At), Value: n.Fn, Children: children}
	}
	return nil
}

func (n *IntLit) MarshalJSON() ([]byte, error) { return json.Marshal(nodeJSON(n)) }
func (n *Ref) MarshalJSON() ([]byte, error)    { return json.Marshal(nodeJSON(n)) }
func (n *Unary) MarshalJSON() ([]byte, error)  { return json.Marshal(nodeJSON(n)) }
func (n *Binary) MarshalJSON() ([]byte, error) { return json.Marshal(nodeJSON(n)) }
func (n *Let) MarshalJSON() ([]byte, error)    { return json.Marshal(nodeJSON(n)) }
func (n *Call) MarshalJSON() ([]byte, error)   { return json.Marshal(nodeJSON(n)) }

func (f *File) MarshalJSON() ([]byte, error) {
	jn := &jsonNode{Kind: "File", Children: []*jsonNode{nodeJSON(f.Expr)}}
	for _, c := range f.Trailing {
		jn.Trailing = append(jn.Trailing, &jsonComment{Text: c.Text, At: jsonPosition{Line: c.At.Line, Column: c.At.Column}})
	}
	return json.Marshal(jn)
}
