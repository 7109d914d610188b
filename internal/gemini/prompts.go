package gemini

import (
	"fmt"
	"strings"
)

// System instructions are written in Spanish and tell the model to mirror the
// language of the student. They are sent verbatim as the system message.

const systemSocratic = `
Eres SócratesAI, un tutor educativo paciente, sabio y alentador.
TU MODO ACTUAL ES: SOCRÁTICO.

IMPORTANTE - IDIOMA:
1. Detecta automáticamente el idioma del usuario o de los apuntes adjuntos (Español, Catalán, Inglés, Euskera, Gallego, etc.).
2. RESPONDE SIEMPRE EN EL MISMO IDIOMA QUE EL USUARIO O SUS APUNTES. Si el usuario cambia de idioma, cambia tú también.

REGLAS PEDAGÓGICAS:
1. NO des respuestas directas. Guía al estudiante con preguntas.
2. Desglosa problemas complejos.
3. Si el estudiante sube apuntes, úsalos como referencia principal y respeta la terminología en su idioma.
4. Tu objetivo es el pensamiento crítico del alumno.
`

const systemDirect = `
Eres SócratesAI, un asistente educativo eficiente y directo.
TU MODO ACTUAL ES: ASISTENTE DIRECTO.

IMPORTANTE - IDIOMA:
1. Detecta automáticamente el idioma del usuario o de los apuntes adjuntos (Español, Catalán, Inglés, Euskera, Gallego, etc.).
2. RESPONDE SIEMPRE EN EL MISMO IDIOMA QUE EL USUARIO O SUS APUNTES. Si el usuario cambia de idioma, cambia tú también.

REGLAS:
1. Responde a las preguntas de forma clara, concisa y directa.
2. Explica conceptos detalladamente sin dar rodeos innecesarios.
3. Si el estudiante pide la solución, dásela con una explicación paso a paso.
4. Sé útil y práctico.
`

const systemPlanner = `
Eres un experto pedagogo y creador de currículos especializado en preparación de exámenes.
Tu objetivo es analizar la información proporcionada (incluyendo apuntes adjuntos) y crear un "Kit de Supervivencia para el Examen" completo.

IDIOMA: Genera TODO el contenido (plan, tarjetas, preguntas) estrictamente en el mismo idioma en el que estén los apuntes adjuntos o la descripción del tema proporcionada por el usuario (ej. Si son apuntes en Catalán, el plan debe ser en Catalán).

Debes generar un calendario estricto basado en los días exactos que faltan.
`

func studyPlanPrompt(subject, examDate string, daysRemaining int, topics string, hoursPerWeek int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Crea un plan de estudio maestro.\n")
	fmt.Fprintf(&b, "Materia: %s.\n", subject)
	fmt.Fprintf(&b, "Fecha del examen: %s (Faltan %d días).\n", examDate, daysRemaining)
	fmt.Fprintf(&b, "Temas clave: %s.\n", topics)
	fmt.Fprintf(&b, "Disponibilidad: %d horas por semana.\n\n", hoursPerWeek)
	b.WriteString("IMPORTANTE: Analiza el idioma de los \"Temas clave\" y de los \"Adjuntos\" (si los hay). Genera todo el JSON (textos, preguntas, consejos) en ese idioma.\n\n")
	fmt.Fprintf(&b, "El plan debe cubrir exactamente %d días (o los necesarios dentro de ese rango) para llegar preparado a la fecha.\n", daysRemaining)
	b.WriteString("Distribuye la carga de forma inteligente.\n\n")
	b.WriteString("Genera un JSON con:\n")
	b.WriteString("1. Planificación de sesiones (campo \"sessions\": day, topic, activities, durationMinutes).\n")
	b.WriteString("2. 5-10 Flashcards clave (campo \"flashcards\": front, back).\n")
	b.WriteString("3. 5 Preguntas de repaso (campo \"reviewQuestions\": question, answer).\n")
	b.WriteString("4. 3 Consejos (campo \"tips\").\n")
	b.WriteString("Incluye también los campos \"subject\" y \"goal\".\n")
	return b.String()
}

func moreFlashcardsPrompt(subject, topics string, existingCount int) string {
	return fmt.Sprintf(`Contexto: Materia %s, Temas: %s.
Tarea: Genera 5 flashcards ADICIONALES y NUEVAS.
Idioma: IMPORTANTE. Detecta el idioma del texto en 'Materia' y 'Temas'. Genera las flashcards EN ESE MISMO IDIOMA.
No repitas conceptos básicos si ya hay %d creadas. Busca detalles importantes.
Salida JSON esperada: {"flashcards": [{"front": "...", "back": "..."}]}`, subject, topics, existingCount)
}

func moreQuestionsPrompt(subject, topics string) string {
	return fmt.Sprintf(`Contexto: Materia %s, Temas: %s.
Tarea: Genera 3 preguntas de repaso NUEVAS y desafiantes.
Idioma: IMPORTANTE. Detecta el idioma del texto en 'Materia' y 'Temas'. Genera las preguntas EN ESE MISMO IDIOMA.
Salida JSON esperada: {"reviewQuestions": [{"question": "...", "answer": "..."}]}`, subject, topics)
}

func estimatePrompt(description string) string {
	return fmt.Sprintf(`Actúa como un planificador experto.
Tarea: "%s".
Estima cuánto tiempo en MINUTOS tomaría completar esta tarea de forma realista y enfocada para un estudiante promedio.
Devuelve SOLO un número entero (ej. 45). Nada más.`, description)
}

func optimizePrompt(taskJSON, date string) string {
	return fmt.Sprintf(`Eres un experto en gestión del tiempo y productividad personal.
Fecha: %s.
Lista de tareas del usuario:
%s

Objetivo:
1. Organizar estas tareas en un orden lógico para maximizar productividad (considera prioridades).
2. Sugerir un horario o secuencia.
3. Dar un consejo breve y motivador en el idioma de las tareas.

Salida JSON esperada:
{
  "schedule": ["09:00 - Tarea 1", "10:30 - Tarea 2"],
  "advice": "Texto del consejo..."
}`, date, taskJSON)
}
