// reddit - реализует service.Source поверх публичного listing-API reddit.
package reddit

// listing - корневой конверт ответа listing-API (kind == "Listing").
type listing struct {
	Kind string      `json:"kind"`
	Data listingData `json:"data"`
}

// listingData - страница выдачи с курсором продолжения.
type listingData struct {
	// After — курсор следующей страницы; пустая строка — страниц больше нет.
	After    string  `json:"after"`
	Children []thing `json:"children"`
}

// thing - обёртка над одним элементом выдачи.
// Kind: "t3" — пост (submission), "t1" — комментарий.
type thing struct {
	Kind string    `json:"kind"`
	Data thingData `json:"data"`
}

// thingData описывает поля элемента. Посты и комментарии приходят в одном
// и том же JSON-объекте, лишние поля просто остаются нулевыми.
type thingData struct {
	// ID — идентификатор без префикса вида (t1_/t3_).
	ID string `json:"id"`
	// Subreddit — имя сообщества без префикса r/.
	Subreddit string `json:"subreddit"`
	// Permalink — путь относительно корня reddit.
	Permalink string `json:"permalink"`
	// CreatedUTC — unix-время публикации; у API это float с дробной частью.
	CreatedUTC float64 `json:"created_utc"`
	Score      int64   `json:"score"`

	// Поля поста.
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	IsSelf      bool    `json:"is_self"`
	UpvoteRatio float64 `json:"upvote_ratio"`
	NumComments int64   `json:"num_comments"`
	URL         string  `json:"url"`

	// Поля комментария.
	Body string `json:"body"`
	// ParentID — полный идентификатор родителя с префиксом: t3_<post> для
	// верхнеуровневого комментария, t1_<comment> для ответа.
	ParentID string `json:"parent_id"`
	// LinkID — полный идентификатор поста (t3_<post>), к которому относится комментарий.
	LinkID      string `json:"link_id"`
	IsSubmitter bool   `json:"is_submitter"`
}
