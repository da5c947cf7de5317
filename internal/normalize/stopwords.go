package normalize

// Portuguese function words removed before the text is sent for
// classification. Shared read-only set, initialized once.
var stopWords = map[string]struct{}{}

func init() {
	words := []string{
		"a", "à", "às", "ao", "aos", "aquela", "aquelas", "aquele", "aqueles",
		"aquilo", "as", "até", "com", "como", "contra", "da", "das", "de",
		"dela", "delas", "dele", "deles", "depois", "desta", "deste", "dessa",
		"desse", "disso", "disto", "do", "dos", "e", "é", "ela", "elas", "ele",
		"eles", "em", "entre", "era", "eram", "essa", "essas", "esse", "esses",
		"esta", "estas", "está", "estão", "estamos", "estava", "estavam",
		"este", "estes", "estou", "eu", "foi", "fomos", "for", "foram",
		"fosse", "fossem", "fui", "há", "isso", "isto", "já", "lhe", "lhes",
		"mais", "mas", "me", "mesma", "mesmo", "meu", "meus", "minha",
		"minhas", "muita", "muitas", "muito", "muitos", "na", "nas", "não",
		"nem", "nessa", "nesse", "nesta", "neste", "no", "nos", "nós",
		"nossa", "nossas", "nosso", "nossos", "num", "numa", "o", "os", "ou",
		"para", "pela", "pelas", "pelo", "pelos", "por", "porque", "qual",
		"quais", "quando", "que", "quem", "são", "se", "seja", "sejam",
		"sem", "ser", "será", "serão", "seu", "seus", "só", "somos", "sou",
		"sua", "suas", "também", "te", "tem", "têm", "temos", "tenho",
		"terá", "terão", "teu", "teus", "teve", "tinha", "tinham", "tive",
		"tivemos", "tua", "tuas", "tudo", "um", "uma", "umas", "uns",
		"você", "vocês", "vos",
	}
	for _, w := range words {
		stopWords[w] = struct{}{}
	}
}
