package content

var sampleVerbs = []Verb{
	{ID: "v-1", Base: "be", Past: "was/were", Participle: "been", Translation: "бути", Difficulty: DifficultyEasy, Examples: []string{"I was at home yesterday."}},
	{ID: "v-2", Base: "go", Past: "went", Participle: "gone", Translation: "іти", Difficulty: DifficultyEasy, Examples: []string{"She went to the market."}},
	{ID: "v-3", Base: "get", Past: "got", Participle: "got/gotten", Translation: "отримувати", Difficulty: DifficultyMedium, Examples: []string{"He has gotten better at chess."}},
	{ID: "v-4", Base: "take", Past: "took", Participle: "taken", Translation: "брати", Difficulty: DifficultyEasy, Examples: []string{"They took the early train."}},
	{ID: "v-5", Base: "see", Past: "saw", Participle: "seen", Translation: "бачити", Difficulty: DifficultyEasy, Examples: []string{"Have you seen this film?"}},
	{ID: "v-6", Base: "come", Past: "came", Participle: "come", Translation: "приходити", Difficulty: DifficultyEasy, Examples: []string{"Winter has come early."}},
	{ID: "v-7", Base: "write", Past: "wrote", Participle: "written", Translation: "писати", Difficulty: DifficultyMedium, Examples: []string{"The letter was written by hand."}},
	{ID: "v-8", Base: "speak", Past: "spoke", Participle: "spoken", Translation: "розмовляти", Difficulty: DifficultyMedium, Examples: []string{"English is spoken worldwide."}},
	{ID: "v-9", Base: "drink", Past: "drank", Participle: "drunk", Translation: "пити", Difficulty: DifficultyMedium, Examples: []string{"He drank the whole bottle of water."}},
	{ID: "v-10", Base: "swim", Past: "swam", Participle: "swum", Translation: "плавати", Difficulty: DifficultyHard, Examples: []string{"She has swum across the lake."}},
	{ID: "v-11", Base: "begin", Past: "began", Participle: "begun", Translation: "починати", Difficulty: DifficultyMedium, Examples: []string{"The lecture has already begun."}},
	{ID: "v-12", Base: "break", Past: "broke", Participle: "broken", Translation: "ламати", Difficulty: DifficultyEasy, Examples: []string{"The vase was broken."}},
	{ID: "v-13", Base: "choose", Past: "chose", Participle: "chosen", Translation: "обирати", Difficulty: DifficultyMedium, Examples: []string{"She was chosen for the team."}},
	{ID: "v-14", Base: "fly", Past: "flew", Participle: "flown", Translation: "літати", Difficulty: DifficultyMedium, Examples: []string{"The birds have flown south."}},
	{ID: "v-15", Base: "forget", Past: "forgot", Participle: "forgot/forgotten", Translation: "забувати", Difficulty: DifficultyMedium, Examples: []string{"I had forgotten his name."}},
	{ID: "v-16", Base: "lie", Past: "lay", Participle: "lain", Translation: "лежати", Difficulty: DifficultyHard, Examples: []string{"The book has lain there for weeks."}},
	{ID: "v-17", Base: "ring", Past: "rang", Participle: "rung", Translation: "дзвонити", Difficulty: DifficultyHard, Examples: []string{"The bell had rung twice."}},
	{ID: "v-18", Base: "shrink", Past: "shrank/shrunk", Participle: "shrunk", Translation: "зменшуватися", Difficulty: DifficultyHard, Examples: []string{"The sweater shrank in the wash."}},
	{ID: "v-19", Base: "teach", Past: "taught", Participle: "taught", Translation: "навчати", Difficulty: DifficultyEasy, Examples: []string{"She taught maths for years."}},
	{ID: "v-20", Base: "throw", Past: "threw", Participle: "thrown", Translation: "кидати", Difficulty: DifficultyMedium, Examples: []string{"The ball was thrown over the fence."}},
}
