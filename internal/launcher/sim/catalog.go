package sim

// MaxOnline is the advertised capacity shown next to every server.
const MaxOnline = 5000

// ServerNames is the fixed catalog of fictitious game servers.
var ServerNames = []string{
	"Kyiv City", "Lviv District", "Odesa Coast", "Kharkiv State", "Dnipro City",
	"Zaporizhzhia Bay", "Mykolaiv Port", "Chernihiv Lands", "Poltava Hills", "Vinnytsia Valley",
	"Zhytomyr Region", "Rivne District", "Lutsk City", "Uzhhorod Valley", "Ivano City",
	"Ternopil State", "Kropyvnytskyi Zone", "Cherkasy Shore", "Sumy District", "Khmelnytskyi Plains",
	"Bila Tserkva", "Boryspil City", "Mariupol Coast", "Melitopol District", "Berdyansk Bay",
	"Sloviansk City", "Kramatorsk State", "Kolomyia Valley", "Drohobych City", "Mukachevo Hills",
}

// ServerEntry is one row of the server list: a catalog name and its current
// fabricated online count.
type ServerEntry struct {
	Name   string
	Online int
}
