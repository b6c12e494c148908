package poem

// Category identifies one of the five sensory groups a line can come from.
type Category string

const (
	CategorySound Category = "sound"
	CategorySmell Category = "smell"
	CategoryTouch Category = "touch"
	CategoryTaste Category = "taste"
	CategorySight Category = "sight"
)

// Categories lists all sensory categories in their fixed enumeration order.
// Repair passes and tests depend on this order being stable.
var Categories = [5]Category{CategorySound, CategorySmell, CategoryTouch, CategoryTaste, CategorySight}

// sensoryPhrases is the static corpus of candidate lines per category.
// Treated as read-only; generation copies what it needs into a call-scoped pool.
var sensoryPhrases = map[Category][]string{
	CategorySound: {
		"a whisper echoes", "silence rings", "a hum drifts", "chimes crack", "murmurs rise",
		"buzzes fade", "echoes fade", "voices crack", "sounds dissolve", "noise settles", "tones drift",
		"notes float", "rhythms pulse", "beats fade", "harmonies break", "melodies shatter",
		"songs fragment", "music distorts", "cries echo", "screams fade", "laughter rings",
		"sighs drift", "breaths whisper", "heartbeats thud", "footsteps fade", "doors creak",
		"windows rattle", "walls vibrate", "floors groan", "ceilings hum", "winds howl", "storms roar",
		"rains patter", "thunder rumbles", "lightning cracks", "hail clatters", "waves crash",
		"tides ebb", "currents flow", "streams babble", "rivers rush", "oceans roar", "leaves rustle",
		"branches snap", "trees creak", "forests whisper", "fields hum", "meadows sing",
		"machines whir", "engines roar", "gears grind", "wheels turn", "cogs click", "chains rattle",
		"bells toll", "gongs ring", "drums beat", "cymbals clash", "strings pluck", "horns blare",
		"static crackles", "frequencies shift", "wavelengths bend", "resonance builds",
		"vibrations fade", "oscillations stop", "silence breaks", "quiet deepens", "stillness speaks",
		"hush falls", "calm whispers", "peace rings",
	},
	CategorySmell: {
		"scent of rust", "odor of decay", "fragrance drifts", "stench rises", "aroma settles",
		"perfume lingers", "smell of rain", "odor of earth", "scent of metal", "fragrance of flowers",
		"aroma of coffee", "perfume of smoke", "stench of rot", "odor of mold", "scent of dust",
		"fragrance of paper", "aroma of ink", "perfume of leather", "smell of salt", "odor of sea",
		"scent of wind", "fragrance of grass", "aroma of wood", "perfume of pine", "stench of sulfur",
		"odor of ozone", "scent of electricity", "fragrance of oil", "aroma of gasoline",
		"perfume of exhaust", "smell of food", "odor of cooking", "scent of bread",
		"fragrance of spices", "aroma of herbs", "perfume of vanilla", "stench of garbage",
		"odor of waste", "scent of decay", "fragrance of compost", "aroma of soil", "perfume of moss",
		"smell of morning", "odor of night", "scent of dawn", "fragrance of dusk", "aroma of noon",
		"perfume of midnight", "stench of fear", "odor of sweat", "scent of blood",
		"fragrance of tears", "aroma of breath", "perfume of skin", "smell of old", "odor of new",
		"scent of ancient", "fragrance of fresh", "aroma of stale", "perfume of clean",
		"stench of burning", "odor of ash", "scent of smoke", "fragrance of embers", "aroma of char",
		"perfume of fire", "smell of cold", "odor of heat", "scent of ice", "fragrance of steam",
		"aroma of frost", "perfume of warmth", "stench of chemicals", "odor of medicine",
		"scent of alcohol", "fragrance of bleach", "aroma of disinfectant", "perfume of antiseptic",
		"smell of memory", "odor of nostalgia", "scent of longing", "fragrance of regret",
		"aroma of hope", "perfume of dreams", "stench of truth", "odor of lies", "scent of secrets",
		"fragrance of mystery", "aroma of knowledge", "perfume of wisdom", "smell fades",
		"odor lingers", "scent drifts", "fragrance settles", "aroma rises", "perfume evaporates",
	},
	CategoryTouch: {
		"cold surfaces", "warm edges", "rough textures", "smooth planes", "icy fragments",
		"sharp corners", "soft curves", "hot metal", "cool glass", "warm wood", "cold stone",
		"icy water", "burning sand", "freezing air", "rough bark", "smooth silk", "coarse fabric",
		"fine grain", "gritty sand", "slippery ice", "sticky resin", "sharp blades", "dull edges",
		"pointed tips", "rounded forms", "jagged shards", "polished surfaces", "matte finishes",
		"hard concrete", "soft cushions", "firm ground", "yielding foam", "rigid steel",
		"flexible rubber", "brittle glass", "wet rain", "dry dust", "moist earth", "arid desert",
		"damp cloth", "soaked fabric", "parched skin", "sticky honey", "slippery oil", "gritty dirt",
		"smooth marble", "rough stone", "polished brass", "tarnished silver", "prickly thorns",
		"velvety petals", "coarse hair", "fine silk", "thick fur", "thin paper", "dense foam",
		"bumpy roads", "smooth paths", "uneven ground", "level surfaces", "steep slopes",
		"gentle curves", "sharp angles", "tender flesh", "tough hide", "delicate skin",
		"calloused hands", "smooth palms", "rough knuckles", "soft fingertips", "burning fire",
		"freezing ice", "scorching sun", "chilling wind", "warm embrace", "cold rejection",
		"lukewarm indifference", "vibrating strings", "static surfaces", "pulsing rhythms",
		"steady beats", "irregular patterns", "smooth flows", "jerky motions", "pressure builds",
		"tension releases", "stress fractures", "relief flows", "weight presses", "lightness lifts",
		"gravity pulls", "friction grinds", "lubrication slides", "resistance pushes", "yielding gives",
		"rigidity holds", "flexibility bends", "elasticity snaps", "texture shifts", "surface changes",
		"form transforms", "shape morphs", "structure alters", "pattern breaks", "design reforms",
		"touch fades", "sensation lingers", "feeling drifts", "contact breaks", "connection forms",
		"bond strengthens", "link weakens",
	},
	CategoryTaste: {
		"bitter air", "sweet mist", "metallic tang", "sour breath", "salty tears", "sweet honey",
		"sour lemons", "bitter coffee", "spicy peppers", "bland rice", "tangy vinegar", "savory broth",
		"umami depth", "acidic wine", "alkaline water", "neutral milk", "sweet sugar",
		"bitter chocolate", "sour grapes", "salty chips", "spicy curry", "mild cheese", "tart apples",
		"ripe berries", "fresh mint", "earthy mushrooms", "woody herbs", "floral tea", "metallic blood",
		"coppery coins", "iron filings", "zinc tablets", "aluminum foil", "tin cans", "sweet memories",
		"bitter regrets", "sour disappointments", "salty tears", "spicy arguments", "bland routines",
		"tangy nostalgia", "savory moments", "umami experiences", "acidic relationships",
		"alkaline peace", "neutral existence", "sweet success", "bitter failure", "sour grapes",
		"salty language", "spicy gossip", "mild conversation", "tart criticism", "ripe opportunities",
		"fresh ideas", "earthy wisdom", "woody knowledge", "floral inspiration", "metallic truth",
		"coppery lies", "iron will", "zinc determination", "aluminum dreams", "tin reality",
		"sweet dreams", "bitter reality", "sour truth", "salty honesty", "spicy passion",
		"bland apathy", "tangy excitement", "savory satisfaction", "umami fulfillment", "acidic anger",
		"alkaline calm", "neutral balance", "sweet love", "bitter hate", "sour jealousy", "salty envy",
		"spicy desire", "mild affection", "tart rejection", "ripe acceptance", "fresh beginnings",
		"earthy endings", "woody transitions", "floral transformations", "metallic futures",
		"coppery pasts", "iron presents", "zinc memories", "aluminum hopes", "tin fears", "taste fades",
		"flavor lingers", "sensation drifts", "palate clears", "tongue remembers", "mouth forgets",
		"senses blend",
	},
	CategorySight: {
		"glowing forms", "shimmering edges", "glimmering shapes", "flashing lights", "sparkling dust",
		"radiant haze", "bright stars", "dim shadows", "vivid colors", "muted tones", "sharp lines",
		"blurred edges", "clear vision", "dazzling sun", "gentle moon", "fierce lightning", "soft glow",
		"harsh glare", "warm light", "cold illumination", "vibrant reds", "deep blues",
		"bright yellows", "rich greens", "pure whites", "absolute blacks", "endless grays",
		"geometric patterns", "organic shapes", "abstract forms", "concrete structures",
		"fluid movements", "static positions", "dynamic flows", "distant horizons", "close details",
		"wide panoramas", "narrow focus", "deep perspectives", "flat surfaces", "curved spaces",
		"sharp contrasts", "smooth gradients", "bold strokes", "fine lines", "thick borders",
		"thin boundaries", "broken edges", "crystal clarity", "foggy obscurity", "transparent layers",
		"opaque barriers", "translucent veils", "reflective surfaces", "absorbent materials",
		"brilliant highlights", "deep shadows", "mid tones", "high contrast", "low contrast",
		"balanced exposure", "extreme values", "moving objects", "still life", "frozen moments",
		"flowing time", "captured motion", "blurred movement", "sharp stillness", "geometric precision",
		"organic chaos", "structured randomness", "ordered disorder", "patterned chaos",
		"chaotic patterns", "random order", "distant mountains", "close flowers", "wide skies",
		"narrow paths", "deep valleys", "flat plains", "curved roads", "sharp peaks", "smooth valleys",
		"rough terrain", "polished surfaces", "jagged rocks", "rounded stones", "angular crystals",
		"bright futures", "dark pasts", "clear presents", "blurred memories", "sharp recollections",
		"faded images", "vivid dreams", "glowing hopes", "dimming fears", "shimmering possibilities",
		"glimmering doubts", "flashing insights", "sparkling ideas", "radiant understanding",
		"dazzling truth", "gentle lies", "fierce honesty", "soft deception", "harsh reality",
		"warm illusions", "cold facts", "vibrant emotions", "deep feelings", "bright passions",
		"rich experiences", "pure intentions", "absolute actions", "endless thoughts",
		"geometric logic", "organic intuition", "abstract concepts", "concrete facts",
		"fluid reasoning", "static beliefs", "dynamic understanding", "distant goals",
		"close achievements", "wide perspectives", "narrow views", "deep insights",
		"flat understanding", "curved knowledge", "sharp focus", "blurred awareness",
		"clear perception", "foggy comprehension", "transparent meaning", "opaque confusion",
		"translucent understanding", "brilliant clarity", "deep mystery", "mid ambiguity",
		"high certainty", "low confidence", "balanced uncertainty", "extreme conviction",
		"moving forward", "still backward", "frozen present", "flowing future", "captured past",
		"blurred timeline", "sharp moment", "sight fades", "vision lingers", "image drifts",
		"form dissolves", "shape reforms", "pattern breaks", "design emerges",
	},
}

// poeticElements are short fragments used standalone or pairwise-combined
// to build body lines.
var poeticElements = []string{
	"beneath the surface", "above the void", "within the space", "through the gap",
	"across the divide", "beyond the edge", "between the lines", "where shadows meet",
	"when time stops", "how light bends", "if gravity fails", "as memory fades",
	"like dust settling", "unlike before", "drifts slowly", "flows upward", "settles down",
	"rises high", "falls apart", "shifts position", "turns around", "bends inward", "breaks open",
	"forms patterns", "dissolves away", "merges together", "separates cleanly", "connects points",
	"disconnects fully", "empty spaces", "full moments", "vast distances", "tiny fragments",
	"ancient echoes", "new beginnings", "frozen time", "melting edges", "fragmented whole",
	"complete nothing", "under the weight", "over the horizon", "inside the silence",
	"outside the frame", "along the border", "against the current", "beside the void",
	"where light breaks", "as sound fades", "while colors shift", "until shadows merge",
	"since time began", "like waves crashing", "unlike the past", "drifts sideways",
	"flows downward", "settles inward", "rises beyond", "falls together", "shifts perspective",
	"turns inside out", "bends backward", "breaks free", "forms connections", "dissolves into",
	"merges with", "separates from", "connects to", "disconnects from", "hollow spaces",
	"dense moments", "infinite distances", "minute particles", "distant whispers", "endless cycles",
	"suspended motion", "crystallizing thoughts", "shattered unity", "incomplete everything",
	"through the mirror", "around the corner", "inside the echo", "outside the dream",
	"along the thread", "against the grain", "beside the truth", "where darkness meets",
	"as voices blend", "while shapes transform", "until colors fade", "since space curved",
	"like memories floating", "unlike tomorrow", "drifts forward", "flows backward",
	"settles nowhere", "rises everywhere", "falls upward", "shifts dimensions", "turns invisible",
	"bends reality", "breaks silence", "forms chaos", "dissolves structure", "merges opposites",
	"separates unity", "connects fragments", "disconnects bonds", "void spaces", "solid moments",
	"endless horizons", "infinite particles", "eternal whispers", "timeless cycles",
	"motionless motion", "fluid boundaries", "static flow", "dynamic stillness",
	"below the threshold", "above the noise", "within the pause", "through the veil",
	"across the chasm", "beyond the veil", "between the breaths", "where silence speaks",
	"when matter dissolves", "how shadows dance", "if sound becomes light", "as form escapes",
	"like thoughts crystallize", "unlike the expected", "drifts aimlessly", "flows in circles",
	"settles like mist", "rises like smoke", "falls like feathers", "shifts like sand",
	"turns to stone", "bends like glass", "breaks like dawn", "forms like clouds",
	"dissolves like sugar", "merges like rivers", "separates like oil", "connects like roots",
	"disconnects like stars", "hollow echoes", "dense fog", "infinite loops", "minute vibrations",
	"distant thunder", "endless repetition", "suspended disbelief", "crystallizing doubt",
	"shattered expectations", "incomplete sentences", "through the prism", "around the bend",
	"inside the pause", "outside the circle", "along the curve", "against the flow",
	"beside the absence", "where meaning breaks", "as texture fades", "while volume shifts",
	"until form merges", "since structure collapsed", "like gravity reverses", "unlike the known",
	"drifts in reverse", "flows against itself", "settles in layers", "rises in spirals",
	"falls in fragments", "shifts in waves", "turns to liquid", "bends to breaking",
	"breaks to pieces", "forms to nothing", "dissolves to essence", "merges to one",
	"separates to many", "connects to all", "disconnects to none", "void between", "solid between",
	"endless between", "infinite between", "eternal between", "timeless between",
	"motionless between", "fluid between", "static between", "dynamic between",
	"underneath the layers", "overhead the clouds", "inside the core", "outside the shell",
	"alongside the path", "against the wind", "beside the absence", "where time curves",
	"as space folds", "while matter shifts", "until energy fades", "since consciousness began",
	"like atoms dance", "unlike the pattern", "drifts in patterns", "flows in streams",
	"settles in pools", "rises in columns", "falls in sheets", "shifts in grids", "turns to vapor",
	"bends to will", "breaks to atoms", "forms to energy", "dissolves to light", "merges to sound",
	"separates to color", "connects to thought", "disconnects to void", "hollow resonance",
	"dense emptiness", "infinite singularity", "minute infinity", "distant proximity",
	"endless moment", "suspended eternity", "crystallizing void", "shattered infinity",
	"incomplete completion", "through the threshold", "around the axis", "inside the matrix",
	"outside the system", "along the spectrum", "against the order", "beside the chaos",
	"where order meets chaos", "as logic fails", "while reason bends", "until sense breaks",
	"since meaning dissolved", "like truth shifts", "unlike the absolute", "drifts in uncertainty",
	"flows in paradox", "settles in contradiction", "rises in harmony", "falls in discord",
	"shifts in balance", "turns to question", "bends to answer", "breaks to mystery",
	"forms to riddle", "dissolves to truth", "merges to lie", "separates to both",
	"connects to neither", "disconnects to all", "void of meaning", "solid of meaning",
	"endless of meaning", "infinite of meaning", "eternal of meaning", "timeless of meaning",
	"motionless of meaning", "fluid of meaning", "static of meaning", "dynamic of meaning",
	"beneath the layers", "above the clouds", "within the core", "through the shell",
	"across the path", "beyond the wind", "between the absence", "where curves meet",
	"when space folds", "how matter shifts", "if energy fades", "as consciousness began",
	"like patterns dance", "unlike the stream", "drifts in circles", "flows in patterns",
	"settles in mist", "rises in smoke", "falls in feathers", "shifts in sand", "turns to dawn",
	"bends to glass", "breaks to stone", "forms to clouds", "dissolves to roots", "merges to rivers",
	"separates to oil", "connects to sugar", "disconnects to stars", "hollow like echoes",
	"dense like fog", "infinite like loops", "minute like vibrations", "distant like thunder",
	"endless like repetition", "suspended like disbelief", "crystallizing like doubt",
	"shattered like expectations", "incomplete like sentences", "through the pause",
	"around the circle", "inside the prism", "outside the bend", "along the absence",
	"against the meaning", "beside the curve", "where texture breaks", "as volume fades",
	"while form shifts", "until structure merges", "since gravity collapsed", "like known reverses",
	"unlike the liquid", "drifts to breaking", "flows to pieces", "settles to nothing",
	"rises to essence", "falls to one", "shifts to many", "turns to all", "bends to none",
	"breaks to between", "forms to void", "dissolves to solid", "merges to endless",
	"separates to infinite", "connects to eternal", "disconnects to timeless",
	"hollow to motionless", "dense to fluid", "infinite to static", "minute to dynamic",
	"distant to layers", "endless to clouds", "suspended to core", "crystallizing to shell",
	"shattered to path", "incomplete to absence", "underneath the curves", "overhead the space",
	"inside the matter", "outside the energy", "alongside the consciousness", "against the atoms",
	"beside the patterns", "where streams meet", "as circles dance", "while mist flows",
	"until smoke settles", "since feathers rise", "like sand falls", "unlike the vapor",
	"drifts to will", "flows to atoms", "settles to energy", "rises to light", "falls to sound",
	"shifts to color", "turns to thought", "bends to void", "breaks to resonance",
	"forms to emptiness", "dissolves to singularity", "merges to infinity", "separates to proximity",
	"connects to moment", "disconnects to eternity", "hollow to void", "dense to infinity",
	"infinite to completion", "minute to threshold", "distant to axis", "endless to matrix",
	"suspended to system", "crystallizing to spectrum", "shattered to order", "incomplete to chaos",
	"through the logic", "around the reason", "inside the sense", "outside the meaning",
	"along the truth", "against the absolute", "beside the uncertainty", "where paradox meets",
	"as contradiction shifts", "while harmony rises", "until discord falls", "since balance breaks",
	"like question turns", "unlike the answer", "drifts to mystery", "flows to riddle",
	"settles to truth", "rises to lie", "falls to both", "shifts to neither", "turns to all",
	"bends to meaning", "breaks to void", "forms to solid", "dissolves to endless",
	"merges to infinite", "separates to eternal", "connects to timeless",
	"disconnects to motionless", "hollow to fluid", "dense to static", "infinite to dynamic",
}
