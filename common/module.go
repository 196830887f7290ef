package common

type Module string

const (
	ModuleBubblegum Module = "bubblegum"
)

func (m Module) String() string {
	return string(m)
}
