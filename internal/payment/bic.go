package payment

// bankBICTable maps 4-digit Czech bank codes to their SWIFT/BIC codes.
// Read-only; safe for concurrent use.
var bankBICTable = map[string]string{
	"0100": "KOMBCZPP",
	"0300": "CEKOCZPP",
	"0600": "AGBACZPP",
	"0710": "CNBACZPP",
	"0800": "GIBACZPX",
	"2010": "FIOBCZPP",
	"2020": "BOTKCZPP",
	"2060": "CITFCZPP",
	"2070": "MPUBCZPP",
	"2210": "FICHCZPP",
	"2240": "POBNCZPP",
	"2310": "ZUNOCZPP",
	"2600": "CITICZPX",
	"2700": "BACXCZPP",
	"3030": "AIRACZP1",
	"3500": "INGBCZPP",
	"4000": "SOLACZPP",
	"4300": "CMZRCZP1",
	"5400": "ABNACZPP",
	"5500": "RZBCCZPP",
	"5800": "JTBPCZPP",
	"6000": "PMBPCZPP",
	"6100": "EQBKCZPP",
	"6200": "COBACZPX",
	"6210": "BREXCZPP",
	"6300": "GEBACZPP",
	"6700": "SUBACZPP",
	"6800": "VBOECZ2X",
	"7910": "DEUTCZPX",
	"7940": "SPWTCZ21",
	"8030": "GENOCZ21",
	"8040": "OBKLCZ2X",
	"8090": "CZEECZPP",
	"8150": "MIDLCZPP",
}
