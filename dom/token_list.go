package dom

import "strings"

// DOMTokenList is https://dom.spec.whatwg.org/#interface-domtokenlist
// It reads and writes through to its attribute, so it never goes stale.
type DOMTokenList struct {
	element   *Element
	attribute string
}

func (l *DOMTokenList) Tokens() []string {
	return strings.Fields(l.element.GetAttribute(l.attribute))
}

func (l *DOMTokenList) Length() int {
	return len(l.Tokens())
}

func (l *DOMTokenList) Contains(token string) bool {
	for _, t := range l.Tokens() {
		if t == token {
			return true
		}
	}
	return false
}

func (l *DOMTokenList) Add(tokens ...string) {
	current := l.Tokens()
	for _, token := range tokens {
		if token == "" || l.contains(current, token) {
			continue
		}
		current = append(current, token)
	}
	l.element.SetAttribute(l.attribute, strings.Join(current, " "))
}

func (l *DOMTokenList) Remove(tokens ...string) {
	kept := []string{}
	for _, t := range l.Tokens() {
		if !l.contains(tokens, t) {
			kept = append(kept, t)
		}
	}
	l.element.SetAttribute(l.attribute, strings.Join(kept, " "))
}

func (l *DOMTokenList) contains(list []string, token string) bool {
	for _, t := range list {
		if t == token {
			return true
		}
	}
	return false
}
