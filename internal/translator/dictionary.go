package translator

// Entry maps a Spanish phrase to its Russian rendering. An empty Russian
// value deletes the phrase, which is how articles and other function words
// without a Russian equivalent are handled.
type Entry struct {
	Spanish string
	Russian string
}

// dictionary is the static Spanish to Russian phrase dictionary for the
// traffic and driving exam domain. Order matters: entries with equal phrase
// length keep their relative position here when the translator sorts by
// length, so the slice must not be reordered casually.
var dictionary = []Entry{
	// Question words and basic terms
	{"¿Qué", "Что"},
	{"¿Cuál", "Какой"},
	{"¿Cuáles", "Какие"},
	{"¿Cómo", "Как"},
	{"¿Dónde", "Где"},
	{"¿Cuándo", "Когда"},
	{"¿Por qué", "Почему"},
	{"¿A qué", "К чему"},
	{"¿En qué", "В чём"},
	{"¿De qué", "О чём"},
	{"¿Según", "Согласно"},
	{"¿Puede", "Может ли"},
	{"¿Debe", "Должен ли"},
	{"¿Es", "Является ли"},
	{"¿Está", "Находится ли"},

	// Answers and options
	{"Verdadero", "Верно"},
	{"Falso", "Неверно"},
	{"A.", "А."},
	{"B.", "Б."},
	{"C.", "В."},
	{"Sí", "Да"},
	{"No", "Нет"},

	// Traffic and vehicle phrases
	{"factor se deben la mayoría de los siniestros viales", "фактор является причиной большинства дорожно-транспортных происшествий"},
	{"Organización Mundial de la Salud", "Всемирная организация здравоохранения"},
	{"resultado de diversos factores", "результат различных факторов"},
	{"aumentar la propia seguridad", "повысить собственную безопасность"},
	{"condiciones en que se encuentran", "условия, в которых находятся"},
	{"infraestructura vial", "дорожная инфраструктура"},
	{"condiciones climáticas", "климатические условия"},
	{"factor ambiental", "экологический фактор"},
	{"principal factor de riesgo", "основной фактор риска"},
	{"condiciones meteorológicas", "метеорологические условия"},
	{"fallas mecánicas", "механические неисправности"},
	{"conductas negligentes", "небрежное поведение"},
	{"propietarios de los vehículos", "владельцы транспортных средств"},
	{"verificación del estado", "проверка состояния"},
	{"incidente de tránsito", "дорожный инцидент"},
	{"incidente vial", "дорожное происшествие"},
	{"circulación en la vía pública", "движение по общественным дорогам"},
	{"usuarios de la vía pública", "пользователи общественных дорог"},
	{"responsable de una parte del tránsito", "ответственен за часть дорожного движения"},
	{"no causar peligro", "не создавать опасность"},
	{"entorpecer la circulación", "препятствовать движению"},
	{"estamos obligados", "мы обязаны"},
	{"perjuicios o molestias innecesarias", "ненужный вред или неудобства"},
	{"víctimas fatales", "смертельные жертвы"},
	{"lesionados graves", "серьёзно пострадавшие"},
	{"siniestro de tránsito", "дорожно-транспортное происшествие"},
	{"daños materiales", "материальный ущерб"},
	{"costos sanitarios", "медицинские расходы"},
	{"costos administrativos", "административные расходы"},
	{"premisa básica", "основная предпосылка"},
	{"obligación de no entorpecer", "обязательство не препятствовать"},
	{"experiencia de manejo", "опыт вождения"},
	{"cursos de actualización", "курсы повышения квалификации"},
	{"temática vial", "дорожная тематика"},
	{"frecuencia no mayor", "частота не более"},
	{"principios básicos", "основные принципы"},
	{"sistema de tránsito", "система дорожного движения"},
	{"velocidad y confort", "скорость и комфорт"},
	{"fluidez y seguridad", "плавность и безопасность"},
	{"comodidad y agilidad", "удобство и ловкость"},
	{"mayor probabilidad de siniestralidad", "большая вероятность аварий"},
	{"menor cantidad de vehículos", "меньшее количество транспортных средств"},
	{"mayor cantidad de vehículos", "большее количество транспортных средств"},
	{"menor probabilidad", "меньшая вероятность"},
	{"usuarios de la vía", "пользователи дороги"},
	{"ordenados de más a menos vulnerable", "упорядочены от наиболее к наименее уязвимым"},
	{"demarcación horizontal verde", "зелёная горизонтальная разметка"},
	{"intersección hay una ciclovía", "перекрёстке есть велосипедная дорожка"},
	{"se aproxima a un cruce ferroviario", "приближается к железнодорожному переезду"},
	{"cruce exclusivo de peatones", "пешеходный переход"},
	{"demarcación de la senda peatonal", "разметка пешеходной дорожки"},
	{"por dónde deben cruzar", "где должны переходить"},
	{"es indistinto", "всё равно"},
	{"miren a ambos lados", "посмотрят в обе стороны"},
	{"coincidencia con las paradas", "совпадение с остановками"},
	{"prolongación longitudinal", "продольное продолжение"},
	{"carriles exclusivos", "выделенные полосы"},
	{"único sentido de circulación", "одностороннее движение"},
	{"bandas longitudinales demarcadas", "размеченные продольные полосы"},
	{"calzada destinadas", "проезжая часть предназначена"},
	{"determinados vehículos", "определённые транспортные средства"},
	{"ambulancias, bomberos", "скорая помощь, пожарные"},
	{"vehículos policiales", "полицейские машины"},

	// Basic vehicle and driving terms
	{"vehículo", "транспортное средство"},
	{"vehículos", "транспортные средства"},
	{"automóvil", "автомобиль"},
	{"conductor", "водитель"},
	{"conductores", "водители"},
	{"conducir", "водить"},
	{"conducción", "вождение"},
	{"tránsito", "дорожное движение"},
	{"circulación", "движение"},
	{"vía pública", "общественная дорога"},
	{"calzada", "проезжая часть"},
	{"peatón", "пешеход"},
	{"peatones", "пешеходы"},
	{"licencia", "лицензия"},
	{"licencia de conducir", "водительские права"},
	{"seguridad", "безопасность"},
	{"velocidad", "скорость"},
	{"límite", "ограничение"},
	{"siniestro", "авария"},
	{"accidente", "авария"},
	{"colisión", "столкновение"},
	{"semáforo", "светофор"},
	{"señal", "знак"},
	{"señalización", "знаки"},
	{"carril", "полоса"},
	{"carriles", "полосы"},
	{"autopista", "автомагистраль"},
	{"avenida", "проспект"},
	{"calle", "улица"},
	{"esquina", "угол"},
	{"cruce", "перекресток"},
	{"intersección", "пересечение"},
	{"estacionamiento", "парковка"},
	{"estacionar", "парковаться"},
	{"parar", "останавливаться"},
	{"detener", "останавливать"},
	{"frenar", "тормозить"},
	{"girar", "поворачивать"},
	{"derecha", "направо"},
	{"izquierda", "налево"},
	{"adelantar", "обгонять"},
	{"adelantamiento", "обгон"},
	{"distancia", "расстояние"},
	{"metro", "метр"},
	{"metros", "метров"},
	{"kilómetro", "километр"},
	{"kilómetros", "километров"},
	{"hora", "час"},
	{"horas", "часов"},
	{"km/h", "км/ч"},
	{"alcohol", "алкоголь"},
	{"alcoholemia", "содержание алкоголя в крови"},
	{"sangre", "кровь"},
	{"fatiga", "усталость"},
	{"cansancio", "усталость"},
	{"luces", "фары"},
	{"cinturón", "ремень"},
	{"cinturón de seguridad", "ремень безопасности"},
	{"casco", "шлем"},
	{"documento", "документ"},
	{"documentación", "документы"},
	{"infracción", "нарушение"},
	{"multa", "штраф"},
	{"prohibido", "запрещено"},
	{"obligatorio", "обязательно"},
	{"permitido", "разрешено"},
	{"responsabilidad", "ответственность"},
	{"responsable", "ответственный"},
	{"norma", "норма"},
	{"normas", "нормы"},
	{"ley", "закон"},
	{"reglamento", "правила"},
	{"edad", "возраст"},
	{"menor", "несовершеннолетний"},
	{"menores", "несовершеннолетние"},
	{"adulto", "взрослый"},
	{"persona", "человек"},
	{"personas", "люди"},
	{"pasajero", "пассажир"},
	{"pasajeros", "пассажиры"},
	{"transporte", "транспорт"},
	{"público", "общественный"},
	{"privado", "частный"},
	{"emergencia", "чрезвычайная ситуация"},
	{"ambulancia", "скорая помощь"},
	{"bomberos", "пожарная"},
	{"policía", "полиция"},
	{"hospital", "больница"},
	{"zona", "зона"},
	{"urbana", "городская"},
	{"rural", "сельская"},
	{"escuela", "школа"},
	{"túnel", "туннель"},
	{"puente", "мост"},
	{"curva", "поворот"},
	{"recta", "прямая"},
	{"subida", "подъем"},
	{"bajada", "спуск"},
	{"lluvia", "дождь"},
	{"nieve", "снег"},
	{"niebla", "туман"},
	{"viento", "ветер"},
	{"día", "день"},
	{"noche", "ночь"},
	{"clima", "погода"},
	{"visibilidad", "видимость"},
	{"espejo", "зеркало"},
	{"retrovisor", "зеркало заднего вида"},
	{"motor", "двигатель"},
	{"frenos", "тормоза"},
	{"neumático", "шина"},
	{"neumáticos", "шины"},
	{"combustible", "топливо"},
	{"aceite", "масло"},
	{"batería", "аккумулятор"},
	{"mantenimiento", "техническое обслуживание"},
	{"reparación", "ремонт"},
	{"verificación", "проверка"},
	{"inspección", "осмотр"},

	// Function words. Articles and some prepositions are deleted outright.
	{"el", ""},
	{"la", ""},
	{"los", ""},
	{"las", ""},
	{"un", ""},
	{"una", ""},
	{"de", ""},
	{"del", ""},
	{"que", "что"},
	{"en", "в"},
	{"con", "с"},
	{"por", "по"},
	{"para", "для"},
	{"al", ""},
	{"se", ""},
	{"como", "как"},
	{"más", "более"},
	{"menos", "кроме"},
	{"todo", "весь"},
	{"toda", "вся"},
	{"todos", "все"},
	{"todas", "все"},
	{"otro", "другой"},
	{"otra", "другая"},
	{"otros", "другие"},
	{"otras", "другие"},
	{"mismo", "тот же"},
	{"misma", "та же"},
	{"mismos", "те же"},
	{"mismas", "те же"},
	{"este", "этот"},
	{"esta", "эта"},
	{"estos", "эти"},
	{"estas", "эти"},
	{"ese", "тот"},
	{"esa", "та"},
	{"esos", "те"},
	{"esas", "те"},
	{"cuando", "когда"},
	{"donde", "где"},
	{"porque", "потому что"},
	{"pero", "но"},
	{"sin", "без"},
	{"desde", "с"},
	{"hasta", "до"},
	{"entre", "между"},
	{"sobre", "на"},
	{"bajo", "под"},
	{"ante", "перед"},
	{"tras", "за"},
	{"durante", "во время"},
	{"mediante", "посредством"},
	{"según", "согласно"},
	{"excepto", "кроме"},
	{"salvo", "кроме"},
	{"incluso", "даже"},
	{"también", "также"},
	{"tampoco", "тоже не"},
	{"siempre", "всегда"},
	{"nunca", "никогда"},
	{"jamás", "никогда"},
	{"ya", "уже"},
	{"aún", "ещё"},
	{"todavía", "ещё"},
	{"apenas", "едва"},
	{"solo", "только"},
	{"sólo", "только"},
	{"solamente", "только"},
	{"únicamente", "исключительно"},
}
