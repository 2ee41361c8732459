package keys

type Prefix [2]byte

var (
	// Prefixes for keys in the snapshot schema
	versionPrefix Prefix = [2]byte{0x00, 0x00}
	listPrefix    Prefix = [2]byte{0x00, 0x01}
)
