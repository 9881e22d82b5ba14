package content

var sampleWords = []Word{
	{ID: "w-1", Word: "serendipity", Translation: "щасливий випадок", Difficulty: DifficultyHard, PartOfSpeech: "noun", Example: "A fortunate stroke of serendipity brought them together.", Category: "abstract"},
	{ID: "w-2", Word: "ubiquitous", Translation: "всюдисущий", Difficulty: DifficultyHard, PartOfSpeech: "adjective", Example: "Smartphones have become ubiquitous.", Category: "abstract"},
	{ID: "w-3", Word: "cat", Translation: "кіт", Difficulty: DifficultyEasy, PartOfSpeech: "noun", Example: "The cat sleeps on the windowsill.", Category: "animals"},
	{ID: "w-4", Word: "house", Translation: "будинок", Difficulty: DifficultyEasy, PartOfSpeech: "noun", Example: "They bought a house near the river.", Category: "everyday"},
	{ID: "w-5", Word: "journey", Translation: "подорож", Difficulty: DifficultyMedium, PartOfSpeech: "noun", Example: "The journey took three days.", Category: "travel"},
	{ID: "w-6", Word: "improve", Translation: "покращувати", Difficulty: DifficultyMedium, PartOfSpeech: "verb", Example: "Practice will improve your vocabulary.", Category: "learning"},
	{ID: "w-7", Word: "reluctant", Translation: "неохочий", Difficulty: DifficultyMedium, PartOfSpeech: "adjective", Example: "He was reluctant to leave.", Category: "emotions"},
	{ID: "w-8", Word: "knowledge", Translation: "знання", Difficulty: DifficultyMedium, PartOfSpeech: "noun", Example: "Knowledge is power.", Category: "learning"},
	{ID: "w-9", Word: "apple", Translation: "яблуко", Difficulty: DifficultyEasy, PartOfSpeech: "noun", Example: "She ate an apple for breakfast.", Category: "food"},
	{ID: "w-10", Word: "weather", Translation: "погода", Difficulty: DifficultyEasy, PartOfSpeech: "noun", Example: "The weather is lovely today.", Category: "nature"},
	{ID: "w-11", Word: "gorgeous", Translation: "розкішний", Difficulty: DifficultyMedium, PartOfSpeech: "adjective", Example: "The view from the hill was gorgeous.", Category: "descriptions"},
	{ID: "w-12", Word: "curious", Translation: "допитливий", Difficulty: DifficultyMedium, PartOfSpeech: "adjective", Example: "A curious mind learns faster.", Category: "emotions"},
	{ID: "w-13", Word: "bridge", Translation: "міст", Difficulty: DifficultyEasy, PartOfSpeech: "noun", Example: "The old bridge crosses the canal.", Category: "everyday"},
	{ID: "w-14", Word: "whisper", Translation: "шепотіти", Difficulty: DifficultyMedium, PartOfSpeech: "verb", Example: "She had to whisper in the library.", Category: "actions"},
	{ID: "w-15", Word: "resilient", Translation: "стійкий", Difficulty: DifficultyHard, PartOfSpeech: "adjective", Example: "Children are remarkably resilient.", Category: "abstract"},
	{ID: "w-16", Word: "ambiguous", Translation: "двозначний", Difficulty: DifficultyHard, PartOfSpeech: "adjective", Example: "The instructions were ambiguous.", Category: "abstract"},
	{ID: "w-17", Word: "harvest", Translation: "врожай", Difficulty: DifficultyMedium, PartOfSpeech: "noun", Example: "The harvest was plentiful this year.", Category: "nature"},
	{ID: "w-18", Word: "borrow", Translation: "позичати", Difficulty: DifficultyEasy, PartOfSpeech: "verb", Example: "May I borrow your pen?", Category: "actions"},
	{ID: "w-19", Word: "thorough", Translation: "ретельний", Difficulty: DifficultyHard, PartOfSpeech: "adjective", Example: "The report was thorough and precise.", Category: "descriptions"},
	{ID: "w-20", Word: "beyond", Translation: "за межами", Difficulty: DifficultyMedium, PartOfSpeech: "preposition", Example: "The farm lies beyond the hills.", Category: "everyday"},
}
