package knowledge

import (
	"fmt"
	"strings"
)

// Topic is one entry of the offline knowledge base: a canonical question
// and its canonical answer, addressed by a short lowercase id.
type Topic struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Keyword maps a synonym to a topic id. Keywords are curated by hand and
// must always point at an existing topic.
type Keyword struct {
	Word    string `json:"word"`
	TopicID string `json:"topic_id"`
}

// Base is an immutable knowledge base. Both topics and keywords are held as
// slices because their declaration order is part of the lookup contract:
// matching is first-match over that order, not best-match. The base is
// loaded once at process start and shared read-only across sessions.
type Base struct {
	topics   []Topic
	keywords []Keyword
}

// New builds a base from explicit topic and keyword tables. Callers own the
// ordering; Lookup honors it exactly.
func New(topics []Topic, keywords []Keyword) *Base {
	return &Base{topics: topics, keywords: keywords}
}

// Lookup finds an offline answer for a free-form query. The query is
// lowercased; the first pass matches topic ids as literal substrings, the
// second pass matches keywords the same way. No fuzzy matching and no
// ranking. A miss is a normal outcome, never an error.
func (b *Base) Lookup(query string) (string, bool) {
	q := strings.ToLower(query)

	for _, t := range b.topics {
		if strings.Contains(q, t.ID) {
			return t.Answer, true
		}
	}

	for _, k := range b.keywords {
		if strings.Contains(q, k.Word) {
			if t, ok := b.TopicByID(k.TopicID); ok {
				return t.Answer, true
			}
		}
	}

	return "", false
}

// Topics returns the topic table in its stable order.
func (b *Base) Topics() []Topic {
	return b.topics
}

// TopicByID finds a topic by its id.
func (b *Base) TopicByID(id string) (Topic, bool) {
	for _, t := range b.topics {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}

// Validate checks the referential integrity of the keyword index: every
// keyword must point at an existing topic, and ids must be lowercase since
// queries are lowercased before matching.
func (b *Base) Validate() error {
	for _, t := range b.topics {
		if t.ID != strings.ToLower(t.ID) {
			return fmt.Errorf("topic id %q is not lowercase", t.ID)
		}
	}
	for _, k := range b.keywords {
		if k.Word != strings.ToLower(k.Word) {
			return fmt.Errorf("keyword %q is not lowercase", k.Word)
		}
		if _, ok := b.TopicByID(k.TopicID); !ok {
			return fmt.Errorf("keyword %q references unknown topic %q", k.Word, k.TopicID)
		}
	}
	return nil
}
