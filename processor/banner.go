package processor

import (
	"regexp"

	"github.com/irydacea/wescoco/ansi"
	"github.com/irydacea/wescoco/metrics"
)

// bannerEntry colorizes one kind of unstructured startup line. Each
// pattern has exactly two capture groups, styled with the left and right
// formats (Dim and Green when unset). A oneShot entry is dropped from the
// catalog after its first match. Matching the terminal entry empties the
// catalog and ends banner handling for the rest of the run.
type bannerEntry struct {
	name     string
	oneShot  bool
	terminal bool
	pattern  *regexp.Regexp
	left     ansi.Format
	right    ansi.Format
}

// The fixed startup banner catalog, in match-priority order. The two
// directory-summary entries cover the pre- and post-1.20 output formats;
// only one of them is expected to match in any given run.
var bannerCatalog = []bannerEntry{
	{
		name:    "version",
		oneShot: true,
		pattern: regexp.MustCompile(`^(Battle for Wesnoth v)(.*)$`),
		left:    ansi.Yellow,
		right:   ansi.BrightYellow,
	},
	{
		name:    "started-on",
		oneShot: true,
		pattern: regexp.MustCompile(`^(Started on )(.*)$`),
		left:    ansi.Yellow,
		right:   ansi.BrightYellow,
	},
	{
		name:    "data-dir-found",
		oneShot: true,
		pattern: regexp.MustCompile(`^(Automatically found a possible data directory at: )(.*)$`),
		left:    ansi.Green,
		right:   ansi.BrightGreen,
	},
	{
		name:    "data-dir-override",
		oneShot: true,
		pattern: regexp.MustCompile(`^(Overriding data directory with )('.*')$`),
		left:    ansi.Green,
		right:   ansi.BrightGreen,
	},
	{
		name:    "starting-dir",
		pattern: regexp.MustCompile(`^((?:Starting|Now have) with directory: )(.*)$`),
		right:   ansi.Dim,
	},
	{
		name:    "dir-summary-1.18",
		pattern: regexp.MustCompile(`^((?:Data|User (?:configuration|data)|Cache) directory: +)(.+)$`),
		right:   ansi.BrightBlack,
	},
	{
		name:    "dir-summary-1.20",
		pattern: regexp.MustCompile(`^((?:(?:Game|User) data)|Cache: +)(.+)$`),
		right:   ansi.BrightBlack,
	},
	{
		name:     "video-mode",
		oneShot:  true,
		terminal: true,
		pattern:  regexp.MustCompile(`^(Setting mode to )(.+)$`),
		left:     ansi.Cyan,
		right:    ansi.BrightCyan,
	},
}

// newBannerCatalog returns a fresh copy of the catalog; entries are
// removed from the copy as the run progresses.
func newBannerCatalog() []bannerEntry {
	catalog := make([]bannerEntry, len(bannerCatalog))
	copy(catalog, bannerCatalog)
	return catalog
}

// processBanner scans the remaining catalog front to back and colorizes
// the line per the first matching entry. Lines that match no entry pass
// through unchanged and leave the catalog as is.
func (p *Processor) processBanner(raw, line string) {
	for i := range p.banner {
		entry := p.banner[i]
		m := entry.pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		left, right := entry.left, entry.right
		if left == ansi.Default {
			left = ansi.Dim
		}
		if right == ansi.Default {
			right = ansi.Green
		}

		metrics.ProcessedLinesTotal.WithLabelValues("banner").Inc()
		metrics.BannerMatchesTotal.WithLabelValues(entry.name).Inc()

		p.write(left.Apply(m[1]) + right.Apply(m[2]) + "\n")

		if entry.terminal {
			p.banner = nil
		} else if entry.oneShot {
			p.banner = append(p.banner[:i], p.banner[i+1:]...)
		}
		return
	}

	metrics.ProcessedLinesTotal.WithLabelValues("passthrough").Inc()
	p.write(raw)
}
