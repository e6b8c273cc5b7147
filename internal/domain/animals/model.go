package animals

// Type define las especies del refugio.
// @Enum dog, cat
type Type string

const (
	TypeDog Type = "dog"
	TypeCat Type = "cat"
)

func (t Type) Valid() bool {
	return t == TypeDog || t == TypeCat
}

// Size define el tamaño de un animal.
// extra_large no tiene opción propia en el cuestionario (se agrupa con large).
type Size string

const (
	SizeSmall      Size = "small"
	SizeMedium     Size = "medium"
	SizeLarge      Size = "large"
	SizeExtraLarge Size = "extra_large"
)

func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge:
		return true
	default:
		return false
	}
}

// Scores son las puntuaciones de comportamiento del animal.
// Por convención del productor van de 0 a 10 (el tipo no lo impone).
type Scores struct {
	Friendly                 int
	GoodWithAnimals          int
	GoodWithHumans           int
	LeashTrained             int
	Reactive                 int
	SpecialNeeds             int
	Energy                   int
	Shy                      int
	Activity                 int
	Trainability             int
	DailyActivityRequirement int
}

// Animal representa un animal en adopción tal como viene del catálogo.
// Se construye una sola vez al cargar el catálogo y no se muta después.
type Animal struct {
	ID   string
	Type Type // dog, cat
	Size Size

	Name      string
	Sex       string // texto libre del refugio ("Macho", "Hembra", ...)
	Breed     string
	AgeMonths *int // nil = edad desconocida

	Description string
	Images      []string
	Videos      []string
	SourceURL   string

	Scores Scores
}

func (a Animal) IsDog() bool { return a.Type == TypeDog }

// AgeBuckets son los topes (en meses) que ofrece el filtro de edad.
var AgeBuckets = []int{6, 12, 24, 48, 96, 192}
