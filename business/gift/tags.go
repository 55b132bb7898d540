package gift

// eventTags lists the product tags that suit each known occasion.
var eventTags = map[string][]string{
	"birthday":            {"sports", "clothes", "clocks", "gadgets"},
	"wedding anniversary": {"flowers", "jewelry", "clocks"},
}

// ResolveTags returns the union of the interests and the tags of every known
// event, in first-seen order. Unknown events are ignored.
func ResolveTags(interests, events []string) []string {
	seen := make(map[string]struct{}, len(interests))
	tags := make([]string, 0, len(interests))

	add := func(tag string) {
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	for _, interest := range interests {
		add(interest)
	}

	for _, event := range events {
		for _, tag := range eventTags[event] {
			add(tag)
		}
	}

	return tags
}

type tagSet map[string]struct{}

func newTagSet(tags []string) tagSet {
	set := make(tagSet, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return set
}

// intersects reports whether any of tags is in the set.
func (s tagSet) intersects(tags []string) bool {
	for _, t := range tags {
		if _, ok := s[t]; ok {
			return true
		}
	}
	return false
}
