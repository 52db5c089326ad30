// Package news serves the news list, detail and category endpoints.
package news

import "newsboard/internal/domain/entity"

// DTO is one item of the news list.
type DTO struct {
	ID       string `json:"id" example:"1"`
	Title    string `json:"title" example:"科技前沿：人工智能在医疗领域的突破性应用"`
	Source   string `json:"source" example:"科技日报"`
	Time     string `json:"time" example:"2024-01-15 10:30"`
	Image    string `json:"image,omitempty"`
	URL      string `json:"url" example:"/news/1"`
	Category string `json:"category,omitempty" example:"科技"`
	Abstract string `json:"abstract,omitempty"`
}

// DetailDTO is a news record with its body.
type DetailDTO struct {
	DTO
	Content  string   `json:"content"`
	Tags     []string `json:"tags,omitempty"`
	Views    int      `json:"views,omitempty"`
	Comments int      `json:"comments,omitempty"`
}

func toDTO(item entity.NewsItem) DTO {
	return DTO{
		ID:       item.ID,
		Title:    item.Title,
		Source:   item.Source,
		Time:     item.Time,
		Image:    item.Image,
		URL:      item.URL,
		Category: item.Category,
		Abstract: item.Abstract,
	}
}

func toDetailDTO(d *entity.NewsDetail) DetailDTO {
	return DetailDTO{
		DTO:      toDTO(d.NewsItem),
		Content:  d.Content,
		Tags:     d.Tags,
		Views:    d.Views,
		Comments: d.Comments,
	}
}
