package imposter

// Category holds one word pool players can draw a secret word from
type Category struct {
	Name  string   `json:"name"`
	Emoji string   `json:"emoji"`
	Words []string `json:"-"`
}

// CategoryInfo is the client-facing summary of a category
type CategoryInfo struct {
	Name      string `json:"name"`
	Emoji     string `json:"emoji"`
	WordCount int    `json:"wordCount"`
}

// categoryOrder keeps category selection deterministic for a given
// random source; Go map iteration order would not be
var categoryOrder = []string{
	"Animals", "Food", "Movies", "Sports", "Professions", "Countries",
	"Cities", "Brands", "Instruments", "Colors", "Vehicles", "Furniture",
	"Technology", "Clothing", "Weather", "School", "Superheroes", "Body",
	"Hobbies", "VideoGames", "Animes", "Nature",
}

var categories = map[string]Category{
	"Animals": {
		Name:  "Animals",
		Emoji: "🦁",
		Words: []string{
			"Elephant", "Dolphin", "Penguin", "Giraffe", "Kangaroo", "Octopus",
			"Lion", "Tiger", "Bear", "Wolf", "Fox", "Eagle", "Hawk", "Owl",
			"Shark", "Whale", "Jellyfish", "Seahorse", "Butterfly", "Dragonfly",
			"Gorilla", "Chimpanzee", "Orangutan", "Zebra", "Rhino", "Hippo",
			"Crocodile", "Alligator", "Snake", "Lizard", "Turtle", "Frog",
			"Koala", "Panda", "Sloth", "Cheetah", "Leopard", "Jaguar",
			"Deer", "Moose", "Buffalo", "Camel", "Llama", "Alpaca",
		},
	},
	"Food": {
		Name:  "Food",
		Emoji: "🍕",
		Words: []string{
			"Pizza", "Sushi", "Tacos", "Burger", "Pasta", "Ramen",
			"Sandwich", "Salad", "Steak", "Chicken", "Rice", "Noodles",
			"Curry", "Soup", "Chili", "Burrito", "Quesadilla", "Nachos",
			"Lasagna", "Spaghetti", "Ravioli", "Dumpling", "Spring Roll",
			"Pancakes", "Waffles", "French Toast", "Omelette", "Bacon",
			"Hot Dog", "Pretzel", "Popcorn", "Ice Cream", "Cake", "Cookie",
			"Brownie", "Donut", "Muffin", "Croissant", "Bagel", "Toast",
			"Chips", "Fries", "Onion Rings", "Wings", "Ribs", "BBQ",
		},
	},
	"Movies": {
		Name:  "Movies",
		Emoji: "🎬",
		Words: []string{
			"Titanic", "Avatar", "Inception", "Jaws", "Frozen", "Shrek",
			"Gladiator", "Matrix", "Terminator", "Alien", "Predator",
			"Rocky", "Rambo", "Die Hard", "Jurassic Park", "Star Wars",
			"Star Trek", "Lord of the Rings", "Harry Potter", "Batman",
			"Superman", "Spider-Man", "Iron Man", "Avengers", "Thor",
			"Black Panther", "Wonder Woman", "Joker", "Toy Story", "Finding Nemo",
			"Up", "Wall-E", "Ratatouille", "Moana", "Coco", "Tangled",
			"The Lion King", "Aladdin", "Beauty and the Beast", "Mulan",
			"Pocahontas", "Hercules", "Tarzan", "Bambi", "Dumbo",
		},
	},
	"Sports": {
		Name:  "Sports",
		Emoji: "⚽",
		Words: []string{
			"Soccer", "Basketball", "Tennis", "Swimming", "Baseball", "Hockey",
			"Football", "Golf", "Boxing", "Wrestling", "Karate", "Judo",
			"Volleyball", "Rugby", "Cricket", "Badminton", "Table Tennis",
			"Skiing", "Snowboarding", "Skateboarding", "Surfing", "Diving",
			"Gymnastics", "Track", "Marathon", "Cycling", "Archery", "Fencing",
			"Bowling", "Darts", "Pool", "Lacrosse", "Polo", "Rowing",
			"Sailing", "Rock Climbing", "Yoga", "Pilates", "CrossFit",
		},
	},
	"Professions": {
		Name:  "Professions",
		Emoji: "👨‍⚕️",
		Words: []string{
			"Doctor", "Teacher", "Chef", "Firefighter", "Pilot", "Engineer",
			"Nurse", "Dentist", "Lawyer", "Judge", "Police Officer", "Detective",
			"Scientist", "Astronaut", "Architect", "Artist", "Musician", "Actor",
			"Writer", "Journalist", "Photographer", "Designer", "Developer",
			"Farmer", "Fisherman", "Carpenter", "Plumber", "Electrician",
			"Mechanic", "Barber", "Stylist", "Veterinarian", "Zookeeper",
			"Librarian", "Accountant", "Banker", "Cashier", "Waiter", "Bartender",
			"Baker", "Butcher", "Tailor", "Soldier", "Sailor", "Marine",
		},
	},
	"Countries": {
		Name:  "Countries",
		Emoji: "🌍",
		Words: []string{
			"USA", "Canada", "Mexico", "Brazil", "Argentina", "Chile",
			"UK", "France", "Germany", "Italy", "Spain", "Portugal",
			"Russia", "China", "Japan", "South Korea", "India", "Thailand",
			"Australia", "New Zealand", "Egypt", "South Africa", "Kenya",
			"Greece", "Turkey", "Poland", "Sweden", "Norway", "Denmark",
			"Netherlands", "Belgium", "Switzerland", "Austria", "Ireland",
			"Vietnam", "Indonesia", "Philippines", "Malaysia", "Singapore",
		},
	},
	"Cities": {
		Name:  "Cities",
		Emoji: "🏙️",
		Words: []string{
			"New York", "Los Angeles", "Chicago", "Houston", "Miami", "Boston",
			"London", "Paris", "Rome", "Madrid", "Barcelona", "Berlin",
			"Tokyo", "Seoul", "Beijing", "Shanghai", "Hong Kong", "Singapore",
			"Dubai", "Sydney", "Melbourne", "Toronto", "Vancouver", "Montreal",
			"Amsterdam", "Vienna", "Prague", "Budapest", "Athens", "Istanbul",
			"Moscow", "Stockholm", "Copenhagen", "Oslo", "Helsinki", "Dublin",
			"Lisbon", "Bangkok", "Mumbai", "Delhi", "Rio", "Buenos Aires",
		},
	},
	"Brands": {
		Name:  "Brands",
		Emoji: "🏷️",
		Words: []string{
			"Apple", "Samsung", "Google", "Microsoft", "Amazon", "Facebook",
			"Nike", "Adidas", "Puma", "Reebok", "Coca-Cola", "Pepsi",
			"McDonald's", "Burger King", "KFC", "Starbucks", "Subway",
			"Toyota", "Honda", "Ford", "BMW", "Mercedes", "Tesla",
			"Sony", "Nintendo", "PlayStation", "Xbox", "Disney", "Netflix",
			"Spotify", "YouTube", "Instagram", "Twitter", "TikTok",
			"IKEA", "Lego", "Barbie", "Hot Wheels", "Marvel", "DC Comics",
		},
	},
	"Instruments": {
		Name:  "Instruments",
		Emoji: "🎸",
		Words: []string{
			"Guitar", "Piano", "Drums", "Violin", "Cello", "Bass",
			"Flute", "Clarinet", "Saxophone", "Trumpet", "Trombone", "Tuba",
			"Harmonica", "Accordion", "Banjo", "Ukulele", "Mandolin", "Harp",
			"Xylophone", "Marimba", "Tambourine", "Bongos", "Cymbals",
			"Keyboard", "Synthesizer", "Organ", "Bagpipes", "Oboe", "Bassoon",
		},
	},
	"Colors": {
		Name:  "Colors",
		Emoji: "🎨",
		Words: []string{
			"Red", "Blue", "Green", "Yellow", "Orange", "Purple",
			"Pink", "Brown", "Black", "White", "Gray", "Silver",
			"Gold", "Beige", "Tan", "Navy", "Turquoise", "Teal",
			"Cyan", "Magenta", "Lime", "Olive", "Maroon", "Crimson",
			"Scarlet", "Indigo", "Violet", "Lavender", "Coral", "Salmon",
		},
	},
	"Vehicles": {
		Name:  "Vehicles",
		Emoji: "🚗",
		Words: []string{
			"Car", "Truck", "Motorcycle", "Bicycle", "Scooter", "Bus",
			"Train", "Subway", "Tram", "Airplane", "Helicopter", "Jet",
			"Boat", "Ship", "Yacht", "Submarine", "Rocket", "Spaceship",
			"Tank", "Ambulance", "Fire Truck", "Police Car", "Taxi",
			"Van", "SUV", "Sedan", "Coupe", "Convertible", "Limousine",
			"Tractor", "Bulldozer", "Crane", "Forklift", "Golf Cart",
		},
	},
	"Furniture": {
		Name:  "Furniture",
		Emoji: "🛋️",
		Words: []string{
			"Chair", "Table", "Sofa", "Bed", "Desk", "Dresser",
			"Bookshelf", "Cabinet", "Wardrobe", "Nightstand", "Ottoman",
			"Bench", "Stool", "Armchair", "Recliner", "Couch", "Loveseat",
			"Coffee Table", "Dining Table", "End Table", "Lamp", "Mirror",
			"Rug", "Curtain", "Mattress", "Pillow", "Blanket", "Drawer",
		},
	},
	"Technology": {
		Name:  "Technology",
		Emoji: "💻",
		Words: []string{
			"Computer", "Laptop", "Tablet", "Smartphone", "Smartwatch",
			"Mouse", "Keyboard", "Monitor", "Printer", "Scanner", "Camera",
			"Headphones", "Speaker", "Microphone", "Router", "Modem",
			"USB Drive", "Hard Drive", "SSD", "RAM", "CPU", "GPU",
			"Drone", "Robot", "VR Headset", "TV", "Remote", "Console",
			"Charger", "Battery", "Cable", "Bluetooth", "WiFi", "GPS",
		},
	},
	"Clothing": {
		Name:  "Clothing",
		Emoji: "👕",
		Words: []string{
			"T-Shirt", "Jeans", "Dress", "Skirt", "Pants", "Shorts",
			"Jacket", "Coat", "Hoodie", "Sweater", "Cardigan", "Blazer",
			"Suit", "Tie", "Scarf", "Hat", "Cap", "Beanie", "Gloves",
			"Socks", "Shoes", "Boots", "Sneakers", "Sandals", "Heels",
			"Belt", "Vest", "Tank Top", "Polo Shirt", "Blouse", "Leggings",
			"Swimsuit", "Bikini", "Underwear", "Pajamas", "Robe", "Kimono",
		},
	},
	"Weather": {
		Name:  "Weather",
		Emoji: "⛅",
		Words: []string{
			"Sunny", "Cloudy", "Rainy", "Snowy", "Foggy", "Windy",
			"Stormy", "Thunder", "Lightning", "Hail", "Sleet", "Drizzle",
			"Hurricane", "Tornado", "Blizzard", "Monsoon", "Rainbow",
			"Hot", "Cold", "Warm", "Cool", "Humid", "Dry", "Frost",
		},
	},
	"School": {
		Name:  "School",
		Emoji: "📚",
		Words: []string{
			"Math", "Science", "English", "History", "Geography", "Art",
			"Music", "PE", "Biology", "Chemistry", "Physics", "Literature",
			"Writing", "Reading", "Spelling", "Grammar", "Algebra", "Geometry",
			"Calculus", "Economics", "Psychology", "Sociology", "Philosophy",
			"Drama", "Theater", "Dance", "Computer Science", "Languages",
		},
	},
	"Superheroes": {
		Name:  "Superheroes",
		Emoji: "🦸",
		Words: []string{
			"Superman", "Batman", "Spider-Man", "Wonder Woman", "Iron Man",
			"Captain America", "Thor", "Hulk", "Black Widow", "Hawkeye",
			"Flash", "Aquaman", "Green Lantern", "Cyborg", "Black Panther",
			"Doctor Strange", "Scarlet Witch", "Vision", "Ant-Man", "Wasp",
			"Deadpool", "Wolverine", "Storm", "Cyclops", "Jean Grey",
			"Captain Marvel", "Star-Lord", "Gamora", "Rocket", "Groot",
		},
	},
	"Body": {
		Name:  "Body",
		Emoji: "🫀",
		Words: []string{
			"Head", "Brain", "Eyes", "Ears", "Nose", "Mouth", "Teeth",
			"Tongue", "Neck", "Shoulders", "Arms", "Elbows", "Wrists",
			"Hands", "Fingers", "Chest", "Heart", "Lungs", "Stomach",
			"Back", "Spine", "Hips", "Legs", "Knees", "Ankles", "Feet",
			"Toes", "Skin", "Hair", "Nails", "Blood", "Bones", "Muscles",
		},
	},
	"Hobbies": {
		Name:  "Hobbies",
		Emoji: "🎯",
		Words: []string{
			"Reading", "Writing", "Drawing", "Painting", "Photography",
			"Cooking", "Baking", "Gardening", "Hiking", "Camping", "Fishing",
			"Gaming", "Collecting", "Knitting", "Sewing", "Crafting",
			"Dancing", "Singing", "Playing Music", "Watching Movies",
			"Bird Watching", "Traveling", "Blogging", "Vlogging", "Podcasting",
			"Woodworking", "Pottery", "Origami", "Puzzles", "Board Games",
		},
	},
	"VideoGames": {
		Name:  "VideoGames",
		Emoji: "🎮",
		Words: []string{
			"Super Mario", "Zelda", "Halo", "Call of Duty", "Fortnite", "Minecraft",
			"League of Legends", "Overwatch", "Apex Legends", "Valorant", "Counter-Strike", "PUBG",
			"Elden Ring", "Dark Souls", "Bloodborne", "Sekiro", "Genshin Impact", "Honkai Star Rail",
			"Stardew Valley", "Animal Crossing", "Pokemon", "Final Fantasy", "Kingdom Hearts", "Persona",
			"Street Fighter", "Tekken", "Mortal Kombat", "Smash Bros", "Rocket League", "FIFA",
			"NBA 2K", "Madden", "The Sims", "SimCity", "Civilization", "Age of Empires",
			"Portal", "Half-Life", "Bioshock", "Mass Effect", "Dragon Age", "Skyrim",
		},
	},
	"Animes": {
		Name:  "Animes",
		Emoji: "🍥",
		Words: []string{
			"Naruto", "One Piece", "Bleach", "Dragon Ball", "Attack on Titan", "My Hero Academia",
			"Demon Slayer", "Jujutsu Kaisen", "Fullmetal Alchemist", "Death Note", "Cowboy Bebop", "Samurai Champloo",
			"Spy x Family", "Chainsaw Man", "Haikyuu", "Kuroko no Basket", "Slam Dunk", "Yuri on Ice",
			"Sailor Moon", "Cardcaptor Sakura", "Inuyasha", "Yu Yu Hakusho", "Hunter x Hunter", "Fairy Tail",
			"Tokyo Ghoul", "Blue Exorcist", "Black Clover", "One Punch Man", "Mob Psycho 100", "Gintama",
			"Neon Genesis Evangelion", "Steins;Gate", "Your Name", "Weathering With You", "Princess Mononoke", "Spirited Away",
		},
	},
	"Nature": {
		Name:  "Nature",
		Emoji: "🏔️",
		Words: []string{
			"Mountain", "River", "Lake", "Ocean", "Beach", "Forest",
			"Desert", "Jungle", "Waterfall", "Cave", "Valley", "Hill",
			"Volcano", "Island", "Cliff", "Canyon", "Meadow", "Field",
			"Pond", "Stream", "Glacier", "Iceberg", "Reef", "Swamp",
			"Tree", "Flower", "Grass", "Rock", "Stone", "Sand", "Soil",
		},
	},
}

// IsValidCategory reports whether hosts may select the named category
func IsValidCategory(name string) bool {
	_, ok := categories[name]
	return ok
}

// AvailableCategories lists every category with its word count, in
// the order clients should display them
func AvailableCategories() []CategoryInfo {
	infos := make([]CategoryInfo, 0, len(categoryOrder))
	for _, name := range categoryOrder {
		cat := categories[name]
		infos = append(infos, CategoryInfo{
			Name:      cat.Name,
			Emoji:     cat.Emoji,
			WordCount: len(cat.Words),
		})
	}
	return infos
}
