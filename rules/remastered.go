package rules

import "sync"

var remasteredRules = sync.OnceValue(func() RuleSet {
	return NewRuleSet(
		// Here Comes The Sun - Remastered
		MustRule(`-\sRemastered$`, ""),
		// Hey Jude - Remastered 2015
		MustRule(`-\sRemastered\s\d+$`, ""),
		// Let It Be (Remastered 2009)
		// Red Rain (Remaster 2012)
		MustRule(`\(Remaster(ed)?\s\d+\)$`, ""),
		// Pigs On The Wing (Part One) [2011 - Remaster]
		MustRule(`\[\d+\s-\sRemaster\]$`, ""),
		// Comfortably Numb (2011 - Remaster)
		// Dancing Days (2012 Remaster)
		MustRule(`\(\d+(\s-)?\sRemaster\)$`, ""),
		// Outside The Wall - 2011 - Remaster
		// China Grove - 2006 Remaster
		MustRule(`-\s\d+(\s-)?\sRemaster$`, ""),
		// Learning To Fly - 2001 Digital Remaster
		MustRule(`-\s\d+\s.+?\sRemaster$`, ""),
		// Your Possible Pasts - 2011 Remastered Version
		MustRule(`-\s\d+\sRemastered Version$`, ""),
		// Roll Over Beethoven (Live / Remastered)
		MustRule(`\(Live\s/\sRemastered\)$`, ""),
		// Ticket To Ride - Live / Remastered
		MustRule(`-\sLive\s/\sRemastered$`, ""),
		// Mothership (Remastered)
		// How The West Was Won [Remastered]
		MustRule(`[(\[]Remastered[)\]]$`, ""),
		// A Well Respected Man (2014 Remastered Version)
		MustRule(`[(\[]\d{4} Re[Mm]astered Version[)\]]$`, ""),
		// She Was Hot (2009 Re-Mastered Digital Version)
		MustRule(`[(\[]\d{4} Re-?[Mm]astered Digital Version[)\]]$`, ""),
		// In The Court Of The Crimson King (Expanded & Remastered Original Album Mix)
		MustRule(`\([^(]*Remaster[^)]*\)$`, ""),
	)
})

// RemasteredRules returns rules that remove "Remastered ..." suffixes from a
// track or album title.
func RemasteredRules() RuleSet {
	return remasteredRules()
}

var liveRules = sync.OnceValue(func() RuleSet {
	return NewRuleSet(
		// Track - Live
		MustRule(`-\sLive?$`, ""),
		// Track - Live at
		MustRule(`-\sLive\s.+?$`, ""),
	)
})

// LiveRules returns rules that remove "Live ..." suffixes from a track
// title.
func LiveRules() RuleSet {
	return liveRules()
}
