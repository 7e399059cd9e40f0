package dom

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrSyntax is https://dom.spec.whatwg.org/#syntaxerror
var ErrSyntax = errors.New("invalid selector")

// selectorList is a comma separated group; any member matching is a match.
type selectorList []complexSelector

// complexSelector is compound selectors joined by the descendant
// combinator, stored left to right.
type complexSelector []compoundSelector

type attrSelector struct {
	name, value string
	hasValue    bool
}

type compoundSelector struct {
	tag     string
	id      string
	classes []string
	attrs   []attrSelector
}

func parseSelector(s string) (selectorList, error) {
	var list selectorList
	for _, group := range strings.Split(s, ",") {
		fields := strings.Fields(group)
		if len(fields) == 0 {
			return nil, errors.Wrapf(ErrSyntax, "%q", s)
		}
		var cs complexSelector
		for _, f := range fields {
			compound, err := parseCompound(f)
			if err != nil {
				return nil, errors.Wrapf(err, "%q", s)
			}
			cs = append(cs, compound)
		}
		list = append(list, cs)
	}
	return list, nil
}

func isNameChar(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// readName consumes a run of name characters starting at i.
func readName(s string, i int) (string, int) {
	j := i
	for j < len(s) && isNameChar(s[j]) {
		j++
	}
	return s[i:j], j
}

func parseCompound(s string) (compoundSelector, error) {
	var c compoundSelector
	i := 0
	if i < len(s) && s[i] == '*' {
		i++
	} else {
		c.tag, i = readName(s, i)
		c.tag = lower(c.tag)
	}
	for i < len(s) {
		var name string
		switch s[i] {
		case '#':
			name, i = readName(s, i+1)
			if name == "" {
				return c, errors.Wrap(ErrSyntax, "empty id")
			}
			c.id = name
		case '.':
			name, i = readName(s, i+1)
			if name == "" {
				return c, errors.Wrap(ErrSyntax, "empty class")
			}
			c.classes = append(c.classes, name)
		case '[':
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return c, errors.Wrap(ErrSyntax, "unterminated attribute selector")
			}
			a, err := parseAttr(s[i+1 : i+end])
			if err != nil {
				return c, err
			}
			c.attrs = append(c.attrs, a)
			i += end + 1
		default:
			return c, errors.Wrapf(ErrSyntax, "unexpected %q", s[i])
		}
	}
	return c, nil
}

func parseAttr(s string) (attrSelector, error) {
	name, value, hasValue := s, "", false
	if eq := strings.IndexByte(s, '='); eq >= 0 {
		name, value, hasValue = s[:eq], s[eq+1:], true
		value = strings.Trim(value, `"'`)
	}
	if n, end := readName(name, 0); n == "" || end != len(name) {
		return attrSelector{}, errors.Wrapf(ErrSyntax, "attribute name %q", name)
	}
	return attrSelector{name: lower(name), value: value, hasValue: hasValue}, nil
}

func (l selectorList) match(n *Node) bool {
	for _, cs := range l {
		if cs.match(n) {
			return true
		}
	}
	return false
}

// match checks the rightmost compound against n, then finds each earlier
// compound among n's ancestors.
func (cs complexSelector) match(n *Node) bool {
	last := len(cs) - 1
	if !cs[last].match(n) {
		return false
	}
	i := last - 1
	for p := n.ParentNode; p != nil && i >= 0; p = p.ParentNode {
		if p.NodeType == ElementNode && cs[i].match(p) {
			i--
		}
	}
	return i < 0
}

func (c compoundSelector) match(n *Node) bool {
	if c.tag != "" && c.tag != n.LocalName {
		return false
	}
	if c.id != "" && c.id != n.ID() {
		return false
	}
	list := n.ClassList()
	for _, class := range c.classes {
		if !list.Contains(class) {
			return false
		}
	}
	for _, a := range c.attrs {
		if !n.HasAttribute(a.name) {
			return false
		}
		if a.hasValue && n.GetAttribute(a.name) != a.value {
			return false
		}
	}
	return true
}
