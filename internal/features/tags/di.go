package tags

var tagRepository = &TagRepository{}
var tagService = &TagService{
	tagRepository,
}

func GetTagService() *TagService {
	return tagService
}
