package models

type ArticleCreated struct {
	Article Article
}

func (e ArticleCreated) Type() string {
	return "ArticleCreated"
}

type ArticleUpdated struct {
	Article Article
	// Matched is false when no row had the article's id.
	Matched bool
}

func (e ArticleUpdated) Type() string {
	return "ArticleUpdated"
}

type ArticleDeleted struct {
	ArticleID int64
	Matched   bool
}

func (e ArticleDeleted) Type() string {
	return "ArticleDeleted"
}
