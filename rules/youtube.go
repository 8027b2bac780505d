package rules

import "sync"

var youTubeTrackRules = sync.OnceValue(func() RuleSet {
	return NewRuleSet(
		// surrounding whitespace
		MustRule(`^\s+`, ""),
		MustRule(`\s+$`, ""),
		// **NEW**
		MustRule(`\*+\s?\S+\s?\*+$`, ""),
		// [whatever]
		MustRule(`\[[^\]]+\]`, ""),
		// (whatever version)
		MustRule(`(?i)\([^)]*version\)$`, ""),
		// video extensions
		MustRule(`(?i)\.(avi|wmv|mpg|mpeg|flv)$`, ""),
		// (LYRICs VIDEO)
		MustRule(`(?i)\(.*lyrics?\s*(video)?\)`, ""),
		// (Official Track Stream)
		MustRule(`(?i)\((of+icial\s*)?(track\s*)?stream\)`, ""),
		// (official)? (music)? video
		MustRule(`(?i)\((of+icial\s*)?(music\s*)?video\)`, ""),
		// (official)? (music)? audio
		MustRule(`(?i)\((of+icial\s*)?(music\s*)?audio\)`, ""),
		// (ALBUM TRACK)
		MustRule(`(?i)(ALBUM TRACK\s*)?(album track\s*)`, ""),
		// (Cover Art)
		MustRule(`(?i)(COVER ART\s*)?(Cover Art\s*)`, ""),
		// (official)
		MustRule(`(?i)\(\s*of+icial\s*\)`, ""),
		// (1999)
		MustRule(`(?i)\(\s*[0-9]{4}\s*\)`, ""),
		// HD (HQ)
		MustRule(`(HD|HQ)\s*$`, ""),
		// video clip officiel or video clip official
		MustRule(`(?i)(vid[ée]o)?\s?clip\sof+ici[ae]l`, ""),
		// offizielles
		MustRule(`(?i)of+iziel+es\s*video`, ""),
		// video clip
		MustRule(`(?i)vid[ée]o\s?clip`, ""),
		// clip
		MustRule(`(?i)\sclip`, ""),
		// Full Album
		MustRule(`(?i)full\s*album`, ""),
		// (live)
		MustRule(`(?i)\(live.*?\)$`, ""),
		// | something
		MustRule(`(?i)\|.*$`, ""),
		// Artist - The new "Track title" featuring someone
		MustRule(`^(|.*\s)"(.{5,})"(\s.*|)$`, "$2"),
		// 'Track title'
		MustRule(`^(|.*\s)'(.{5,})'(\s.*|)$`, "$2"),
		// (*01/01/1999*)
		MustRule(`(?i)\(.*[0-9]{1,2}/[0-9]{1,2}/[0-9]{2,4}.*\)`, ""),
		// Sub Español
		MustRule(`(?i)sub\s*español`, ""),
		// (Letra/Lyrics)
		MustRule(`(?i)\s\(Letra/Lyrics\)`, ""),
		// (Letra)
		MustRule(`(?i)\s\(Letra\)`, ""),
		// (En vivo)
		MustRule(`(?i)\s\(En\svivo\)`, ""),
	)
})

// YouTubeTrackRules returns rules that strip YouTube-style prefixes and
// suffixes ("(Official Video)", "[HD]", lyric-video tags, upload dates)
// from a track title.
func YouTubeTrackRules() RuleSet {
	return youTubeTrackRules()
}
