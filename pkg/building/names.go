package building

// Owner flavor tables. Like the district numbers, these are tuned data;
// reorder them and every generated world changes, so append only.

var givenNames = []string{
	"Yusuf", "Mariam", "Niccolò", "Elena", "Ibrahim", "Sofia",
	"Andrea", "Rahel", "Tomaso", "Amina", "Giorgio", "Esther",
	"Mehmed", "Caterina", "Selim", "Bianca", "Hassan", "Lucia",
	"Davud", "Theodora", "Piero", "Fatima", "Marco", "Despina",
}

var familyNames = []string{
	"of the Harbor", "the Elder", "of Ragusa", "the Younger",
	"al-Tajir", "Contarini", "of the Old Gate", "Kalfa",
	"di Levante", "the Quiet", "of the Mill", "Sarraf",
}

var professions = []string{
	"cloth merchant", "spice trader", "weaver", "potter", "tanner",
	"scribe", "physician", "baker", "porter", "boatwright",
	"coppersmith", "dyer", "rope maker", "apothecary", "carpenter",
	"fishmonger", "silk dealer", "stonemason",
}

const (
	ownerMinAge = 17
	ownerMaxAge = 74
)
