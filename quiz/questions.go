package quiz

// Answer keys, as used by the questionnaire and by ParseAnswers.
const (
	KeyPriority1   = "prioridad1"
	KeyPriority2   = "prioridad2"
	KeyEconomic    = "enfoque_economico"
	KeyCCSS        = "ccss"
	KeySecurity    = "seguridad_enfoque"
	KeyEnvironment = "ambiente_desarrollo"
	KeyGender      = "genero"
	KeyExperience  = "corrupcion"
	KeyGroups      = "grupos"
)

// Choice is one selectable answer.
type Choice struct {
	Value string
	Label string
}

// Question is one step of the questionnaire.
type Question struct {
	Key     string
	Message string
	Multi   bool
	Choices []Choice
}

// Valid reports whether value is one of the question's choices.
func (q Question) Valid(value string) bool {
	for _, c := range q.Choices {
		if c.Value == value {
			return true
		}
	}
	return false
}

var priorityChoices = []Choice{
	{string(Economia), "💼 La falta de empleo y la economía"},
	{string(Salud), "🏥 El estado del sistema de salud (CCSS)"},
	{string(Educacion), "🎓 La calidad de la educación"},
	{string(Seguridad), "🚔 La inseguridad y el crimen"},
	{string(Ambiente), "🌿 El medio ambiente y el agua"},
	{string(Social), "🏠 La pobreza y desigualdad social"},
}

// Questions is the questionnaire in the order it is asked.
var Questions = []Question{
	{
		Key:     KeyPriority1,
		Message: "¿Cuál es tu MAYOR preocupación para Costa Rica?",
		Choices: priorityChoices,
	},
	{
		Key:     KeyPriority2,
		Message: "¿Y tu SEGUNDA mayor preocupación?",
		Choices: priorityChoices,
	},
	{
		Key:     KeyEconomic,
		Message: "¿Qué enfoque económico preferís?",
		Choices: []Choice{
			{string(Mercado), "📈 Reducir impuestos y dejar que el mercado funcione"},
			{string(Estado), "🏛️ Más inversión estatal en programas sociales"},
			{string(Balance), "⚖️ Un balance entre mercado y Estado"},
		},
	},
	{
		Key:     KeyCCSS,
		Message: "¿Qué debería pasar con la Caja (CCSS)?",
		Choices: []Choice{
			{string(CCSSReforma), "🔧 Reformarla profundamente para hacerla más eficiente"},
			{string(CCSSFortalecer), "💪 Fortalecerla con más recursos y personal"},
			{string(CCSSPrivado), "🏥 Permitir más participación del sector privado"},
		},
	},
	{
		Key:     KeySecurity,
		Message: "¿Cómo se debería combatir la inseguridad?",
		Choices: []Choice{
			{string(ManoDura), "👮 Mano dura: más policía y penas más fuertes"},
			{string(Prevencion), "🎓 Prevención: educación y oportunidades"},
			{string(Integral), "🤝 Ambas: seguridad + oportunidades sociales"},
		},
	},
	{
		Key:     KeyEnvironment,
		Message: "¿Cómo balancear ambiente y desarrollo?",
		Choices: []Choice{
			{string(AmbientePrimero), "🌿 Priorizar la protección ambiental siempre"},
			{string(DesarrolloPrimero), "🏭 El desarrollo económico es más urgente"},
			{string(Sostenible), "♻️ Se pueden lograr ambos con planificación"},
		},
	},
	{
		Key:     KeyGender,
		Message: "¿Qué opinás sobre políticas de género?",
		Choices: []Choice{
			{string(GeneroFavor), "✊ Son necesarias para lograr igualdad real"},
			{string(GeneroTradicional), "👨‍👩‍👧 La familia tradicional debe ser la prioridad"},
			{string(GeneroNeutral), "🤷 No es un tema prioritario para mí"},
		},
	},
	{
		Key:     KeyExperience,
		Message: "¿Qué es más importante en un candidato?",
		Choices: []Choice{
			{string(Nuevo), "🧹 Que sea nuevo y no tenga pasado político"},
			{string(Experiencia), "📚 Que tenga experiencia aunque sea de partidos tradicionales"},
			{string(Historial), "🔍 Que tenga un historial limpio, sin importar si es nuevo"},
		},
	},
	{
		Key:     KeyGroups,
		Message: "¿Con cuáles grupos te identificás más? (podés elegir varios)",
		Multi:   true,
		Choices: []Choice{
			{string(Trabajador), "👨‍💼 Trabajador/empleado"},
			{string(Emprendedor), "🏪 Emprendedor/empresario"},
			{string(Joven), "👨‍🎓 Estudiante/joven"},
			{string(Pensionado), "👴 Pensionado/adulto mayor"},
			{string(Rural), "👩‍🌾 Del campo/zona rural"},
			{string(Urbano), "🏙️ De zona urbana"},
			{string(Mujer), "👩 Mujer trabajadora/madre"},
		},
	},
}

// LookupQuestion finds a question by answer key.
func LookupQuestion(key string) (Question, bool) {
	for _, q := range Questions {
		if q.Key == key {
			return q, true
		}
	}
	return Question{}, false
}
