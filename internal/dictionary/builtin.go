package dictionary

// Builtin returns the store backed by the small table compiled into the
// binary. It is the default source and the one used in tests.
func Builtin() *Store {
	s, err := NewStore(builtinEntries)
	if err != nil {
		panic("dictionary: invalid builtin table: " + err.Error())
	}
	return s
}

var builtinEntries = []Entry{
	{
		Word:          "hello",
		Pronunciation: "/həˈloʊ/",
		Chinese:       "你好；哈喽",
		Definitions: []string{
			"used as a greeting or to begin a phone conversation",
			"an expression of surprise or interest",
		},
		Examples: []string{
			"Hello, how are you today?",
			"Hello! What a pleasant surprise!",
			"Hello, this is John speaking.",
		},
	},
	{
		Word:          "world",
		Pronunciation: "/wɜːrld/",
		Chinese:       "世界；地球",
		Definitions: []string{
			"the earth, together with all of its countries and peoples",
			"a particular region or group of countries",
		},
		Examples: []string{
			"The world is a beautiful place.",
			"She traveled around the world.",
			"The world of technology is rapidly changing.",
		},
	},
	{
		Word:          "beautiful",
		Pronunciation: "/ˈbjuːtɪfl/",
		Chinese:       "美丽的；漂亮的",
		Definitions: []string{
			"pleasing the senses or mind aesthetically",
			"of a very high standard; excellent",
		},
		Examples: []string{
			"The sunset was beautiful tonight.",
			"She has a beautiful voice.",
			"What a beautiful day it is!",
		},
	},
	{
		Word:          "computer",
		Pronunciation: "/kəmˈpjuːtər/",
		Chinese:       "计算机；电脑",
		Definitions: []string{
			"an electronic device for storing and processing data",
			"a person who makes calculations",
		},
		Examples: []string{
			"I use my computer for work every day.",
			"The computer crashed and I lost all my files.",
			"Modern computers are very powerful.",
		},
	},
	{
		Word:          "learn",
		Pronunciation: "/lɜːrn/",
		Chinese:       "学习；学会",
		Definitions: []string{
			"gain or acquire knowledge of or skill in something",
			"become aware of something",
		},
		Examples: []string{
			"Children learn quickly.",
			"I want to learn how to cook.",
			"We learn from our mistakes.",
		},
	},
	{
		Word:          "love",
		Pronunciation: "/lʌv/",
		Chinese:       "爱；喜欢",
		Definitions: []string{
			"an intense feeling of deep affection",
			"a great interest and pleasure in something",
		},
		Examples: []string{
			"I love my family very much.",
			"She loves reading books.",
			"Love is the most powerful emotion.",
		},
	},
	{
		Word:          "time",
		Pronunciation: "/taɪm/",
		Chinese:       "时间；时候",
		Definitions: []string{
			"the indefinite continued progress of existence",
			"a point of time as measured in hours and minutes",
		},
		Examples: []string{
			"Time flies when you're having fun.",
			"What time is it now?",
			"I don't have time for this.",
		},
	},
	{
		Word:          "good",
		Pronunciation: "/ɡʊd/",
		Chinese:       "好的；优秀的",
		Definitions: []string{
			"to be desired or approved of",
			"having the required qualities",
		},
		Examples: []string{
			"That's a good idea.",
			"She is a good student.",
			"Have a good day!",
		},
	},
	{
		Word:          "friend",
		Pronunciation: "/frend/",
		Chinese:       "朋友；友人",
		Definitions: []string{
			"a person whom one knows and with whom one has a bond of mutual affection",
			"a person who supports a cause or organization",
		},
		Examples: []string{
			"She is my best friend.",
			"A friend in need is a friend indeed.",
			"I made many friends at school.",
		},
	},
	{
		Word:          "home",
		Pronunciation: "/hoʊm/",
		Chinese:       "家；家庭",
		Definitions: []string{
			"the place where one lives permanently",
			"the place where something originates",
		},
		Examples: []string{
			"There's no place like home.",
			"I'm going home now.",
			"Home is where the heart is.",
		},
	},
}
