// Package admin defines the declarative field schemas behind the content
// editors' generic create/edit forms, and normalizes submitted payloads
// against them before anything reaches a domain service.
package admin

type Kind string

const (
	KindText     Kind = "text"
	KindNumber   Kind = "number"
	KindRichText Kind = "richtext"
	KindImage    Kind = "image"
	KindDateTime Kind = "datetime"
	KindSelect   Kind = "select"
)

type Field struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Kind     Kind     `json:"type"`
	Required bool     `json:"required,omitempty"`
	Options  []string `json:"options,omitempty"`
}

type Schema struct {
	Entity string  `json:"entity"`
	Label  string  `json:"label"`
	Fields []Field `json:"fields"`
}

// Columns returns the fields shown in the admin listing table: the first
// three declared fields, by convention.
func (s Schema) Columns() []Field {
	if len(s.Fields) <= 3 {
		return s.Fields
	}
	return s.Fields[:3]
}

func (s Schema) field(key string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

var matchCategories = []string{
	"Séniores Masculinos",
	"Séniores Femininos",
	"Juniores",
	"Juvenis",
	"Iniciados",
}

var schemas = []Schema{
	{
		Entity: "news",
		Label:  "Notícias",
		Fields: []Field{
			{Key: "title", Label: "Título", Kind: KindText, Required: true},
			{Key: "content", Label: "Conteúdo", Kind: KindRichText},
			{Key: "image_url", Label: "Imagem", Kind: KindImage},
		},
	},
	{
		Entity: "matches",
		Label:  "Jogos",
		Fields: []Field{
			{Key: "date", Label: "Data", Kind: KindDateTime, Required: true},
			{Key: "home_team", Label: "Equipa Casa", Kind: KindText, Required: true},
			{Key: "guest_team", Label: "Equipa Visitante", Kind: KindText, Required: true},
			{Key: "location", Label: "Local", Kind: KindText},
			{Key: "category", Label: "Escalão", Kind: KindSelect, Options: matchCategories},
			{Key: "score_home", Label: "Resultado Casa", Kind: KindNumber},
			{Key: "score_guest", Label: "Resultado Visitante", Kind: KindNumber},
		},
	},
	{
		Entity: "products",
		Label:  "Loja",
		Fields: []Field{
			{Key: "name", Label: "Nome", Kind: KindText, Required: true},
			{Key: "price", Label: "Preço (€)", Kind: KindNumber, Required: true},
			{Key: "description", Label: "Descrição", Kind: KindRichText},
			{Key: "image_url", Label: "Imagem", Kind: KindImage},
		},
	},
	{
		Entity: "partners",
		Label:  "Parceiros",
		Fields: []Field{
			{Key: "name", Label: "Nome", Kind: KindText, Required: true},
			{Key: "website_url", Label: "Website", Kind: KindText},
			{Key: "logo_url", Label: "Logótipo", Kind: KindImage},
		},
	},
	{
		Entity: "teams",
		Label:  "Equipas",
		Fields: []Field{
			{Key: "name", Label: "Nome", Kind: KindText, Required: true},
			{Key: "category", Label: "Escalão", Kind: KindText},
			{Key: "description", Label: "Descrição", Kind: KindRichText},
			{Key: "coaches", Label: "Equipa Técnica", Kind: KindRichText},
			{Key: "image_url", Label: "Imagem", Kind: KindImage},
		},
	},
	{
		Entity: "team_members",
		Label:  "Atletas",
		Fields: []Field{
			{Key: "name", Label: "Nome", Kind: KindText, Required: true},
			{Key: "number", Label: "Número", Kind: KindText},
			{Key: "position", Label: "Posição", Kind: KindText},
			{Key: "team_id", Label: "Equipa", Kind: KindSelect, Required: true},
			{Key: "image_url", Label: "Fotografia", Kind: KindImage},
		},
	},
	{
		Entity: "gallery",
		Label:  "Galeria",
		Fields: []Field{
			{Key: "title", Label: "Título", Kind: KindText},
			{Key: "image_url", Label: "Imagem", Kind: KindImage, Required: true},
		},
	},
	{
		Entity: "organization",
		Label:  "Direção",
		Fields: []Field{
			{Key: "name", Label: "Nome", Kind: KindText, Required: true},
			{Key: "role", Label: "Cargo", Kind: KindText},
			{Key: "image_url", Label: "Fotografia", Kind: KindImage},
		},
	},
	{
		Entity: "site_content",
		Label:  "Conteúdo do Site",
		Fields: []Field{
			{Key: "section", Label: "Secção", Kind: KindSelect, Required: true},
			{Key: "title", Label: "Título", Kind: KindRichText},
			{Key: "subtitle", Label: "Subtítulo", Kind: KindRichText},
			{Key: "image_url", Label: "Imagem de Fundo", Kind: KindImage},
		},
	},
}

// Schemas returns every entity schema in declaration order.
func Schemas() []Schema {
	return schemas
}

// SchemaFor looks a schema up by entity name.
func SchemaFor(entity string) (Schema, bool) {
	for _, s := range schemas {
		if s.Entity == entity {
			return s, true
		}
	}
	return Schema{}, false
}
