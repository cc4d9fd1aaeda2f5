package usecase

import (
	"github.com/fadilmartias/cv-matcher/internal/matching"
	"github.com/fadilmartias/cv-matcher/internal/model"
)

func jobDocument(j model.Job) matching.JobDocument {
	return matching.JobDocument{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Skills:      j.Skills,
	}
}

func jobDocuments(jobs []model.Job) []matching.JobDocument {
	docs := make([]matching.JobDocument, len(jobs))
	for i, j := range jobs {
		docs[i] = jobDocument(j)
	}
	return docs
}
