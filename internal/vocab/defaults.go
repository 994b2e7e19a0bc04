package vocab

// Built-in tables, tuned against the meat, poultry and grocery trade press.

var executiveKeywords = []string{
	"appointed",
	"promoted",
	"named",
	"joins",
	"hires",
	"hired",
	"new ceo",
	"new president",
	"new chief",
	"new vp",
	"new vice president",
	"new director",
	"announces",
	"leadership",
	"executive",
	"succession",
	"steps down",
	"retires",
	"takes over",
	"taps",
	"elevates",
	"selects",
	"names",
	"appoints",
}

// executiveTitles is ordered most specific first. Compound titles precede
// the generic titles they contain.
var executiveTitles = []string{
	// C-suite, spelled-out forms before abbreviations
	"Chief Executive Officer",
	"Chief Operating Officer",
	"Chief Financial Officer",
	"Chief Marketing Officer",
	"Chief Technology Officer",
	"Chief Information Officer",
	"Chief Human Resources Officer",
	"Chief Supply Chain Officer",
	"Chief Commercial Officer",
	"Chief Revenue Officer",
	"Chief Sales Officer",
	"Chief Strategy Officer",
	"CHRO",
	"CEO",
	"COO",
	"CFO",
	"CMO",
	"CTO",
	"CIO",
	// VP level, qualified forms before bare VP/President
	"Senior Vice President",
	"Executive Vice President",
	"Group Vice President",
	"Regional Vice President",
	"VP of Sales",
	"VP of Marketing",
	"VP of Operations",
	"VP of Finance",
	"VP of Human Resources",
	"VP of Supply Chain",
	"VP of Manufacturing",
	"VP of Procurement",
	"VP of Quality",
	"VP of R&D",
	"VP of Research",
	"Vice President",
	"SVP",
	"EVP",
	"VP",
	// Division heads before the bare President
	"Division President",
	"Business Unit President",
	"President",
	// Director level
	"Senior Director",
	"Executive Director",
	"Managing Director",
	"Regional Director",
	"Director of Sales",
	"Director of Marketing",
	"Director of Operations",
	"Director of Finance",
	"Director",
	// General management
	"General Manager",
	"Plant Manager",
	// Board
	"Chairman",
	"Board Member",
	"Board Director",
}

var falsePositiveNames = []string{
	// News publications
	"supermarket news", "progressive grocer", "grocery dive", "food dive",
	"meat poultry", "meat + poultry", "reuters", "associated press", "ap news",
	"business wire", "pr newswire", "globe newswire", "cision", "yahoo finance",
	"wall street journal", "new york times", "bloomberg", "cnbc", "fox business",
	"food business news", "food navigator", "the packer", "produce news",
	"watt poultry", "national provisioner", "perishable news", "spectrum news",
	"xavier newswire", "investment executive", "industry dive",

	// Common false-positive phrases
	"quietly setting up", "business chief", "warns of", "brings walmart experience",
	"walmart executive", "settled this lawsuit", "grocery chain", "retail giant",
	"food company", "meat company", "industry veteran", "company announces",
	"press release", "news release", "breaking news", "just announced",
	"read more", "click here", "learn more", "see more", "view all",
	"president trump", "president biden", "president obama",
	"greg foran takes", "brings experience", "takes helm", "steps down",
	"steps up", "moves up", "moves on", "stepping down", "stepping up",

	// Company name fragments that surface as names
	"butterball farms", "tyson foods", "hormel foods", "cargill inc",
	"jbs usa", "smithfield foods", "pilgrim pride", "perdue farms",
	"conagra brands", "kraft heinz", "general mills", "kellogg company",
	"nestle usa", "unilever usa", "pepsico inc", "coca cola",

	// Generic terms
	"new ceo", "new president", "new cfo", "new coo", "next ceo",
	"its next ceo", "new hire", "top executive", "senior executive",
	"board member", "board director", "company executive",
}

var invalidFirstWords = []string{
	"the", "a", "an", "new", "former", "current", "acting", "interim",
	"its", "their", "our", "your", "his", "her", "this", "that",
	"brings", "quietly", "business", "walmart", "kroger", "tyson",
	"supermarket", "progressive", "grocery", "food", "meat", "industry",
	"company", "corporate", "executive", "president", "investment",
	"retail", "wholesale", "breaking", "just", "press", "news",
	"warns", "settled", "takes", "steps", "moves", "stepping",
	"read", "click", "learn", "see", "view", "get", "how", "why",
	"what", "when", "where", "who", "which", "here", "there",
	// Titles and descriptors that precede names
	"vet", "veteran", "longtime", "seasoned", "senior", "junior",
	"chief", "ceo", "cfo", "coo", "cto", "cmo", "vp", "svp", "evp",
	"director", "manager", "head", "leader", "founder", "owner",
}

var invalidLastWords = []string{
	"news", "grocer", "dive", "wire", "times", "journal", "post",
	"tribune", "herald", "gazette", "press", "media", "report",
	"foods", "farms", "inc", "corp", "corporation", "company", "co",
	"llc", "ltd", "group", "holdings", "brands", "products",
	"experience", "chief", "executive", "lawsuit", "helm",
	"ceo", "cfo", "coo", "cto", "cmo", "vp", "svp", "evp",
	"up", "down", "on", "off", "out", "in", "here", "there",
}

var publicationSecondWords = []string{
	"news", "dive", "wire", "grocer", "times", "journal",
	"post", "tribune", "herald", "gazette", "foods",
	"farms", "brands", "executive",
}

var verbSurnames = []string{
	"promoted", "appointed", "named", "hired", "takes",
	"joins", "becomes", "steps", "moves", "brings",
}

var politicalSurnames = []string{
	"trump", "biden", "obama", "bush", "clinton",
}

var shortStopwords = []string{
	"and", "or", "the", "of", "for", "at", "in", "on",
	"to", "as", "its", "their", "new", "next",
}
