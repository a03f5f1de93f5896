package content

import (
	"regexp"
	"strings"
)

var (
	stepLinePattern   = regexp.MustCompile(`(?i)^step\s+\d+`)
	stepPrefixPattern = regexp.MustCompile(`(?i)^step\s+\d+:?\s*`)
	statisticPattern  = regexp.MustCompile(`\d+%|\$[\d,]+|↑|↓`)
	bulletPrefix      = regexp.MustCompile(`^-\s*`)
)

// Classify parses text into a Model. It never fails: text without any
// non-blank line yields an "Untitled" generic model with no items.
func Classify(text string) *Model {
	lines := splitLines(text)
	category := detectCategory(lines)

	title := UntitledTitle
	if len(lines) > 0 {
		title = lines[0]
	}

	return &Model{
		category: category,
		title:    title,
		items:    extractItems(category, lines),
	}
}

// splitLines splits text on newlines and drops whitespace-only lines
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// detectCategory applies the detection rules in precedence order
func detectCategory(lines []string) Category {
	switch {
	case anyLine(lines, isStepLine):
		return CategorySteps
	case anyLine(lines, statisticPattern.MatchString):
		return CategoryStatistics
	case anyLine(lines, isBulletLine):
		return CategoryBullets
	case anyLine(lines, func(l string) bool { return strings.Contains(l, ":") }):
		return CategoryTimeline
	default:
		return CategoryGeneric
	}
}

// extractItems builds the payload for the chosen category. The title line is
// never an item, even when it matches the category's pattern.
func extractItems(category Category, lines []string) Items {
	switch category {
	case CategorySteps:
		items := TextItems{}
		for _, line := range rest(lines) {
			if isStepLine(line) {
				trimmed := strings.TrimSpace(line)
				items = append(items, strings.TrimSpace(stepPrefixPattern.ReplaceAllString(trimmed, "")))
			}
		}
		return items

	case CategoryBullets:
		items := TextItems{}
		for _, line := range rest(lines) {
			if isBulletLine(line) {
				trimmed := strings.TrimSpace(line)
				items = append(items, strings.TrimSpace(bulletPrefix.ReplaceAllString(trimmed, "")))
			}
		}
		return items

	case CategoryStatistics:
		items := StatItems{}
		for _, line := range rest(lines) {
			items = append(items, parseStat(line))
		}
		return items

	default:
		return append(TextItems{}, rest(lines)...)
	}
}

// parseStat splits a line on its first colon
func parseStat(line string) Stat {
	label, value, found := strings.Cut(line, ":")
	if !found {
		return Stat{Label: strings.TrimSpace(line)}
	}
	return Stat{Label: strings.TrimSpace(label), Value: strings.TrimSpace(value)}
}

func isStepLine(line string) bool {
	return stepLinePattern.MatchString(strings.TrimSpace(line))
}

func isBulletLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "-")
}

func anyLine(lines []string, match func(string) bool) bool {
	for _, line := range lines {
		if match(line) {
			return true
		}
	}
	return false
}

// rest returns every line after the title line
func rest(lines []string) []string {
	if len(lines) < 2 {
		return nil
	}
	return lines[1:]
}
