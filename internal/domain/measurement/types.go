package measurement

// Type identifies one monitoring category from the fixed catalog.
type Type string

const (
	TypeBloodPressure Type = "blood-pressure"
	TypePulse         Type = "pulse"
	TypeTemperature   Type = "temperature"
	TypeGlucose       Type = "glucose"
	TypeOximeter      Type = "oximeter"
	TypeSpirometer    Type = "spirometer"
	TypeCholesterol   Type = "cholesterol"
	TypeHemoglobin    Type = "hemoglobin"
	TypeTriglycerides Type = "triglycerides"
	TypeWeight        Type = "weight"
	TypeHeight        Type = "height"
	TypeUltrasound    Type = "ultrasound"
	TypeXRay          Type = "xray"
	TypeINR           Type = "inr"
)

// Kind describes the shape of a measurement's payload and therefore how the
// alert evaluator treats it.
type Kind int

const (
	// KindSingle has one numeric component (value1).
	KindSingle Kind = iota
	// KindDouble has two numeric components (value1/value2); blood pressure.
	KindDouble
	// KindText is free text and is never evaluated against thresholds.
	KindText
)

// Definition is one entry of the monitoring catalog.
type Definition struct {
	Type  Type
	Title string // patient-facing display name
	Unit  string
	Kind  Kind
}

// Numeric reports whether the definition carries numeric components.
func (d Definition) Numeric() bool { return d.Kind != KindText }

// Components returns the number of numeric components (0 for text kinds).
func (d Definition) Components() int {
	switch d.Kind {
	case KindSingle:
		return 1
	case KindDouble:
		return 2
	default:
		return 0
	}
}

var catalog = map[Type]Definition{
	TypeBloodPressure: {Type: TypeBloodPressure, Title: "Артериальное давление", Unit: "", Kind: KindDouble},
	TypePulse:         {Type: TypePulse, Title: "Пульс", Unit: "уд/мин", Kind: KindSingle},
	TypeTemperature:   {Type: TypeTemperature, Title: "Температура", Unit: "°C", Kind: KindSingle},
	TypeGlucose:       {Type: TypeGlucose, Title: "Глюкоза", Unit: "ммоль", Kind: KindSingle},
	TypeOximeter:      {Type: TypeOximeter, Title: "Оксигинация крови", Unit: "%", Kind: KindSingle},
	TypeSpirometer:    {Type: TypeSpirometer, Title: "Спирография", Unit: "мл", Kind: KindSingle},
	TypeCholesterol:   {Type: TypeCholesterol, Title: "Холестерин", Unit: "ммоль/л", Kind: KindSingle},
	TypeHemoglobin:    {Type: TypeHemoglobin, Title: "Гемоглобин", Unit: "г/л", Kind: KindSingle},
	TypeTriglycerides: {Type: TypeTriglycerides, Title: "Триглицериды", Unit: "ммоль/л", Kind: KindSingle},
	TypeWeight:        {Type: TypeWeight, Title: "Вес", Unit: "кг", Kind: KindSingle},
	TypeHeight:        {Type: TypeHeight, Title: "Рост", Unit: "см", Kind: KindSingle},
	TypeUltrasound:    {Type: TypeUltrasound, Title: "УЗИ мобил", Unit: "", Kind: KindText},
	TypeXRay:          {Type: TypeXRay, Title: "Рентген мобил", Unit: "", Kind: KindText},
	TypeINR:           {Type: TypeINR, Title: "МНО", Unit: "", Kind: KindSingle},
}

// Lookup returns the catalog definition for a type.
func Lookup(t Type) (Definition, bool) {
	d, ok := catalog[t]
	return d, ok
}

// ValidType reports whether t is part of the catalog.
func ValidType(t Type) bool {
	_, ok := catalog[t]
	return ok
}

// AllTypes returns every catalog type. Order is unspecified.
func AllTypes() []Type {
	types := make([]Type, 0, len(catalog))
	for t := range catalog {
		types = append(types, t)
	}
	return types
}
