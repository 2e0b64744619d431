package translit

const (
	alphabet   = "абвгґдеєжзиіїйклмнопрстуфхцчшщьюя"
	consonants = "бвгґджзйклмнпрстфхцчшщ"

	// baseSource and baseLatin are aligned rune by rune; each standard
	// starts from this letter-for-letter table and overrides from there.
	baseSource = "'абвгґдеєжзиіїйклмнопрстуфхцчшщьюя"
	baseLatin  = "'abvggdeezzyiijklmnoprstufxccssjua"
)

// apostropheAliases are the glyphs written for the Ukrainian apostrophe.
var apostropheAliases = map[rune]rune{
	'’': '\'', // right single quotation mark
	'ʼ': '\'', // modifier letter apostrophe
}

func baseRules() map[string]Rule {
	src, dst := []rune(baseSource), []rune(baseLatin)
	rules := make(map[string]Rule, len(src)+8)
	for i := range src {
		rules[string(src[i])] = Direct(string(dst[i]))
	}
	return rules
}

func newTable(name string, rules map[string]Rule) Table {
	return Table{
		Name:       name,
		Rules:      rules,
		Letters:    alphabet,
		Consonants: consonants,
		Aliases:    apostropheAliases,
	}
}

// TableA returns the DSTU 9112:2021 System A rules.
func TableA() Table {
	r := baseRules()
	r["г"] = Direct("ğ")
	r["є"] = Direct("je")
	r["ж"] = Direct("ž")
	r["ї"] = Direct("ï")
	r["й"] = Contextual("j").AfterConsonant("'j")
	r["йа"] = Direct("j'a")
	r["йе"] = Direct("j'e")
	r["йу"] = Direct("j'u")
	r["ч"] = Direct("č")
	r["ш"] = Direct("š")
	r["щ"] = Direct("ŝ")
	r["ь"] = Contextual("ĵ").AfterConsonant("j")
	r["ьа"] = Direct("j'a")
	r["ье"] = Direct("j'e")
	r["ьу"] = Direct("j'u")
	r["ю"] = Direct("ju")
	r["я"] = Direct("ja")
	return newTable(StandardA.Tag(), r)
}

// TableB returns the DSTU 9112:2021 System B rules.
func TableB() Table {
	r := baseRules()
	r["г"] = Direct("gh")
	r["є"] = Direct("je")
	r["ж"] = Direct("zh")
	r["ї"] = Direct("ji")
	r["й"] = Contextual("j").AfterConsonant("'j")
	r["йа"] = Direct("j'a")
	r["йе"] = Direct("j'e")
	r["йі"] = Direct("j'i")
	r["йу"] = Direct("j'u")
	r["х"] = Direct("kh")
	r["ч"] = Direct("ch")
	r["ш"] = Direct("sh")
	r["шч"] = Direct("sh'ch")
	r["щ"] = Direct("shch")
	r["ь"] = Contextual("hj").AfterConsonant("j")
	r["ьа"] = Direct("j'a")
	r["ье"] = Direct("j'e")
	r["ьі"] = Direct("j'i")
	r["ьу"] = Direct("j'u")
	r["ю"] = Direct("ju")
	r["я"] = Direct("ja")
	return newTable(StandardB.Tag(), r)
}

// TableK returns the Cabinet of Ministers Resolution 55/2010 rules.
func TableK() Table {
	r := baseRules()
	r["'"] = Direct("")
	r["г"] = Direct("h")
	r["є"] = Contextual("ie").AtStart("ye")
	r["ж"] = Direct("zh")
	r["зг"] = Direct("zgh")
	r["ї"] = Contextual("i").AtStart("yi")
	r["й"] = Contextual("i").AtStart("y")
	r["х"] = Direct("kh")
	r["ц"] = Direct("ts")
	r["ч"] = Direct("ch")
	r["ш"] = Direct("sh")
	r["щ"] = Direct("shch")
	r["ь"] = Direct("")
	r["ю"] = Contextual("iu").AtStart("yu")
	r["я"] = Contextual("ia").AtStart("ya")
	return newTable(StandardK.Tag(), r)
}
