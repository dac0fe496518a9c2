package domain

import (
	"encoding/json"

	mapset "github.com/deckarep/golang-set/v2"
)

// TagSet is an insertion-ordered set of tags (skills, job types). Adding a
// tag that is already present is a no-op, as is removing an absent one.
type TagSet struct {
	order   []string
	members mapset.Set[string]
}

func NewTagSet(tags ...string) TagSet {
	var s TagSet
	for _, tag := range tags {
		s.Add(tag)
	}
	return s
}

func (s *TagSet) init() {
	if s.members == nil {
		s.members = mapset.NewThreadUnsafeSet[string]()
	}
}

// Add appends the tag unless it is empty or already present.
func (s *TagSet) Add(tag string) {
	if tag == "" {
		return
	}
	s.init()
	if s.members.Add(tag) {
		s.order = append(s.order, tag)
	}
}

func (s *TagSet) Remove(tag string) {
	if s.members == nil || !s.members.Contains(tag) {
		return
	}
	s.members.Remove(tag)
	for i, t := range s.order {
		if t == tag {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Toggle adds the tag if absent and removes it if present. Used for the
// preferred-job-type chips on the registration form.
func (s *TagSet) Toggle(tag string) {
	s.init()
	if s.members.Contains(tag) {
		s.Remove(tag)
	} else {
		s.Add(tag)
	}
}

func (s TagSet) Contains(tag string) bool {
	return s.members != nil && s.members.Contains(tag)
}

func (s TagSet) Len() int {
	return len(s.order)
}

// Values returns the tags in insertion order.
func (s TagSet) Values() []string {
	return append([]string(nil), s.order...)
}

func (s TagSet) MarshalJSON() ([]byte, error) {
	if len(s.order) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(s.order)
}

func (s *TagSet) UnmarshalJSON(data []byte) error {
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	s.order = nil
	s.members = mapset.NewThreadUnsafeSet[string]()
	for _, tag := range tags {
		s.Add(tag)
	}
	return nil
}
