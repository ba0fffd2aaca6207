package catalog

import (
	"sort"
)

// Topic holds the catalogued attributes of a single study topic. Only the
// supplementary video link is in scope today.
type Topic struct {
	Video string
}

// Catalog is the static class -> subject -> topic content hierarchy. It is
// built once at startup and is read-only afterwards, so it is safe to share
// across requests without locking.
type Catalog struct {
	data map[string]map[string]map[string]Topic
}

func New() *Catalog {
	return &Catalog{
		data: map[string]map[string]map[string]Topic{
			"Class 10": {
				"Physics": {
					"Motion in a Straight Line": {
						Video: "https://www.youtube.com/watch?v=D-y-N2e2s0E",
					},
					"Gravity": {
						Video: "https://www.youtube.com/watch?v=E-b-mz14sD8",
					},
				},
				"Chemistry": {
					"The Atom": {
						Video: "https://www.youtube.com/watch?v=1xSQlwWgh8M",
					},
				},
			},
		},
	}
}

// Structure returns the catalogue skeleton (class -> subject -> topic names)
// without video URLs. Topic lists are sorted so responses are deterministic.
func (c *Catalog) Structure() map[string]map[string][]string {
	structure := make(map[string]map[string][]string, len(c.data))
	for class, subjects := range c.data {
		structure[class] = make(map[string][]string, len(subjects))
		for subject, topics := range subjects {
			names := make([]string, 0, len(topics))
			for name := range topics {
				names = append(names, name)
			}
			sort.Strings(names)
			structure[class][subject] = names
		}
	}
	return structure
}

// VideoURL looks up the configured video for a class/subject/topic
// combination. A missing combination is not an error; ok is false and the
// caller substitutes an empty string.
func (c *Catalog) VideoURL(class, subject, topic string) (string, bool) {
	subjects, ok := c.data[class]
	if !ok {
		return "", false
	}
	topics, ok := subjects[subject]
	if !ok {
		return "", false
	}
	entry, ok := topics[topic]
	if !ok {
		return "", false
	}
	return entry.Video, true
}
