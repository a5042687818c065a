package handler

import (
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-api/internal/model"
)

func TestCreateCategory_Success(t *testing.T) {
	router, _ := setupTestAPI(t)

	w := performRequest(router, http.MethodPost, "/category", map[string]interface{}{
		"name":        "golang",
		"description": "Posts about Go",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := dataMap(t, decode(t, w))
	assert.Equal(t, "golang", data["name"])
	assert.Equal(t, "Posts about Go", data["description"])
	assert.NotZero(t, data["id"])
}

func TestCreateCategory_MissingName(t *testing.T) {
	router, _ := setupTestAPI(t)

	w := performRequest(router, http.MethodPost, "/category", map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	e := decode(t, w)
	require.Len(t, e.Errors, 1)
	assert.Equal(t, "name", e.Errors[0].Field)
}

func TestCreateCategory_WhitespaceNameRejected(t *testing.T) {
	router, db := setupTestAPI(t)

	// 纯空白名称不能混过必填校验，也不能落库为空串
	w := performRequest(router, http.MethodPost, "/category", map[string]interface{}{
		"name": "   ",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	e := decode(t, w)
	require.Len(t, e.Errors, 1)
	assert.Equal(t, "name", e.Errors[0].Field)

	var count int64
	db.Model(&model.Category{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateCategory_Duplicate(t *testing.T) {
	router, db := setupTestAPI(t)

	require.Equal(t, http.StatusCreated, performRequest(router, http.MethodPost, "/category", map[string]interface{}{
		"name": "golang",
	}).Code)

	w := performRequest(router, http.MethodPost, "/category", map[string]interface{}{
		"name": "golang",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	db.Model(&model.Category{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateCategory_ConcurrentSameName(t *testing.T) {
	router, db := setupTestAPI(t)

	// 两个调用者同时创建同名分类：恰好一个201，另一个409，且只留一行
	var wg sync.WaitGroup
	codes := make([]int, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := performRequest(router, http.MethodPost, "/category", map[string]interface{}{
				"name": "golang",
			})
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	assert.ElementsMatch(t, []int{http.StatusCreated, http.StatusConflict}, codes)

	var count int64
	db.Model(&model.Category{}).Count(&count)
	assert.EqualValues(t, 1, count)
}
