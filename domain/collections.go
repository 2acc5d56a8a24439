package domain

const (
	CollectionUser = "system_auth_users"
)

const (
	CollectionSystemInfo = "system_info"
)

const (
	CollectionLibraryAppConfigs = "library_app_configs_base"
)
const (
	CollectionLibraryAppFolderConfigs = "library_app_configs_folder"
)
const (
	CollectionLibraryAppServerConfigs = "library_app_configs_server"
)

const (
	CollectionLibrarySceneBook = "library_scene_book"
)
const (
	CollectionLibrarySceneShelf = "library_scene_shelf"
)
const (
	CollectionLibrarySceneProgress = "library_scene_progress"
)
